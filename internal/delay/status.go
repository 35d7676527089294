package delay

import (
	bookingModel "railstay/internal/domains/booking/model"
)

// ResolveStatus computes the next booking status. A cancelled booking never
// leaves cancelled, regardless of later train recoveries. A rescheduled
// booking reverts to confirmed when the train recovers to on time.
func ResolveStatus(current bookingModel.Status, severity Severity, explicitCancel bool) bookingModel.Status {
	if current == bookingModel.StatusCancelled {
		return bookingModel.StatusCancelled
	}

	if explicitCancel || severity == SeverityCancelled {
		return bookingModel.StatusCancelled
	}

	switch severity {
	case SeverityMinor, SeverityMajor:
		return bookingModel.StatusRescheduled
	case SeverityNone:
		if current == bookingModel.StatusRescheduled {
			return bookingModel.StatusConfirmed
		}

		return current
	default:
		return current
	}
}
