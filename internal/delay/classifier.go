package delay

import (
	"fmt"

	trainModel "railstay/internal/domains/train/model"
	"railstay/shared/constant"
)

// Classifier grades train states. The minor/major boundary is configurable;
// a delay of exactly the threshold is still minor.
type Classifier struct {
	minorThresholdMinutes int
}

func NewClassifier(minorThresholdMinutes int) Classifier {
	if minorThresholdMinutes <= 0 {
		minorThresholdMinutes = constant.DefaultMinorDelayMinutes
	}

	return Classifier{minorThresholdMinutes: minorThresholdMinutes}
}

func (c Classifier) Classify(status trainModel.Status, delayMinutes int) (Severity, error) {
	if delayMinutes < 0 {
		return "", fmt.Errorf("%w: delay minutes %d", ErrInvalidDelay, delayMinutes)
	}

	switch status {
	case trainModel.StatusCancelled:
		return SeverityCancelled, nil
	case trainModel.StatusOnTime:
		return SeverityNone, nil
	case trainModel.StatusDelayed:
		if delayMinutes <= c.minorThresholdMinutes {
			return SeverityMinor, nil
		}

		return SeverityMajor, nil
	default:
		return "", fmt.Errorf("%w: unknown train status %q", ErrInvalidDelay, status)
	}
}
