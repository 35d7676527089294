package delay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"railstay/internal/delay"
)

func TestCompose(t *testing.T) {
	checkIn := time.Date(2026, 3, 10, 15, 45, 0, 0, time.UTC)

	details := delay.BookingDetails{
		BookingID:        "booking-1",
		PassengerName:    "Alice Tan",
		TrainName:        "Coastal Express",
		TrainNumber:      "CE-204",
		HotelName:        "Harbour View Hotel",
		EffectiveCheckIn: checkIn,
	}

	tests := []struct {
		name        string
		event       delay.Event
		wantMessage string
	}{
		{
			name:        "created message",
			event:       delay.EventBookingCreated,
			wantMessage: "Booking confirmed for Alice Tan on Coastal Express",
		},
		{
			name:  "rescheduled message",
			event: delay.EventBookingRescheduled,
			wantMessage: "Booking rescheduled for Alice Tan on Coastal Express (CE-204): " +
				"check-in at Harbour View Hotel moved to 2026-03-10T15:45:00Z",
		},
		{
			name:        "cancelled message",
			event:       delay.EventBookingCancelled,
			wantMessage: "Booking cancelled for Alice Tan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := delay.Compose(details, tt.event)

			assert.NoError(t, err)
			assert.Equal(t, "booking-1", got.BookingID)
			assert.Equal(t, tt.event, got.NotificationType)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestCompose_Deterministic(t *testing.T) {
	details := delay.BookingDetails{
		BookingID:     "booking-1",
		PassengerName: "Alice Tan",
		TrainName:     "Coastal Express",
	}

	first, err := delay.Compose(details, delay.EventBookingCreated)
	assert.NoError(t, err)

	second, err := delay.Compose(details, delay.EventBookingCreated)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCompose_MissingRelation(t *testing.T) {
	tests := []struct {
		name    string
		details delay.BookingDetails
		event   delay.Event
	}{
		{
			name:    "missing booking id",
			details: delay.BookingDetails{PassengerName: "Alice Tan", TrainName: "Coastal Express"},
			event:   delay.EventBookingCreated,
		},
		{
			name:    "missing passenger",
			details: delay.BookingDetails{BookingID: "booking-1", TrainName: "Coastal Express"},
			event:   delay.EventBookingCreated,
		},
		{
			name:    "missing train",
			details: delay.BookingDetails{BookingID: "booking-1", PassengerName: "Alice Tan"},
			event:   delay.EventBookingCreated,
		},
		{
			name: "missing hotel on reschedule",
			details: delay.BookingDetails{
				BookingID:     "booking-1",
				PassengerName: "Alice Tan",
				TrainName:     "Coastal Express",
				TrainNumber:   "CE-204",
			},
			event: delay.EventBookingRescheduled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := delay.Compose(tt.details, tt.event)
			assert.ErrorIs(t, err, delay.ErrMissingRelation)
		})
	}
}

func TestCompose_UnknownEvent(t *testing.T) {
	details := delay.BookingDetails{
		BookingID:     "booking-1",
		PassengerName: "Alice Tan",
		TrainName:     "Coastal Express",
	}

	_, err := delay.Compose(details, delay.Event("booking_upgraded"))
	assert.Error(t, err)
}
