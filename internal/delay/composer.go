package delay

import (
	"fmt"
	"time"
)

// Event is the booking lifecycle transition a notification announces. The
// value doubles as the stored notification_type.
type Event string

const (
	EventBookingCreated     Event = "booking_created"
	EventBookingRescheduled Event = "booking_rescheduled"
	EventBookingCancelled   Event = "booking_cancelled"
)

// BookingDetails carries the resolved relations a notification message
// interpolates.
type BookingDetails struct {
	BookingID        string
	PassengerName    string
	TrainName        string
	TrainNumber      string
	HotelName        string
	EffectiveCheckIn time.Time
}

// Payload is the composed notification, stored in the delay_notifications
// log and published to the notifications topic.
type Payload struct {
	BookingID        string `json:"booking_id"`
	NotificationType Event  `json:"notification_type"`
	Message          string `json:"message"`
}

// Compose renders the deterministic message for an event. Identical inputs
// always yield identical payloads.
func Compose(details BookingDetails, event Event) (Payload, error) {
	if details.BookingID == "" {
		return Payload{}, fmt.Errorf("%w: booking id is empty", ErrMissingRelation)
	}

	if details.PassengerName == "" {
		return Payload{}, fmt.Errorf("%w: passenger for booking %s", ErrMissingRelation, details.BookingID)
	}

	var message string

	switch event {
	case EventBookingCreated:
		if details.TrainName == "" {
			return Payload{}, fmt.Errorf("%w: train for booking %s", ErrMissingRelation, details.BookingID)
		}

		message = fmt.Sprintf("Booking confirmed for %s on %s", details.PassengerName, details.TrainName)
	case EventBookingRescheduled:
		if details.TrainName == "" || details.TrainNumber == "" {
			return Payload{}, fmt.Errorf("%w: train for booking %s", ErrMissingRelation, details.BookingID)
		}

		if details.HotelName == "" {
			return Payload{}, fmt.Errorf("%w: hotel for booking %s", ErrMissingRelation, details.BookingID)
		}

		message = fmt.Sprintf("Booking rescheduled for %s on %s (%s): check-in at %s moved to %s",
			details.PassengerName, details.TrainName, details.TrainNumber,
			details.HotelName, details.EffectiveCheckIn.Format(time.RFC3339))
	case EventBookingCancelled:
		message = fmt.Sprintf("Booking cancelled for %s", details.PassengerName)
	default:
		return Payload{}, fmt.Errorf("unknown notification event %q", event)
	}

	return Payload{
		BookingID:        details.BookingID,
		NotificationType: event,
		Message:          message,
	}, nil
}
