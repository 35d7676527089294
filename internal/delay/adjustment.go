package delay

import (
	"fmt"
	"time"
)

// Adjustment is the outcome of applying a delay to a booking window. CheckIn
// and CheckOut are nil when the window is untouched.
type Adjustment struct {
	CheckIn  *time.Time
	CheckOut *time.Time
	Changed  bool
}

// ComputeAdjustment shifts a booking window by the train's delay. Minor and
// major delays shift checkin and checkout by the same amount, so the stay
// duration never changes. None and cancelled severities leave the window
// alone; cancellation is a status concern, not a schedule concern. The shift
// applies even when the window is already in the past.
func ComputeAdjustment(originalCheckIn, originalCheckOut time.Time, delayMinutes int, severity Severity) (Adjustment, error) {
	if delayMinutes < 0 {
		return Adjustment{}, fmt.Errorf("%w: delay minutes %d", ErrInvalidDelay, delayMinutes)
	}

	if !originalCheckOut.After(originalCheckIn) {
		return Adjustment{}, fmt.Errorf("%w: checkout %s is not after checkin %s",
			ErrInvalidStay, originalCheckOut.Format(time.RFC3339), originalCheckIn.Format(time.RFC3339))
	}

	switch severity {
	case SeverityMinor, SeverityMajor:
	default:
		return Adjustment{}, nil
	}

	if delayMinutes == 0 {
		return Adjustment{}, nil
	}

	shift := time.Duration(delayMinutes) * time.Minute
	checkIn := originalCheckIn.Add(shift)
	checkOut := originalCheckOut.Add(shift)

	return Adjustment{
		CheckIn:  &checkIn,
		CheckOut: &checkOut,
		Changed:  true,
	}, nil
}
