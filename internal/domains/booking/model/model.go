package model

import (
	trainModel "railstay/internal/domains/train/model"
	"railstay/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldPassengerID      = "passenger_id"
	FieldTrainID          = "train_id"
	FieldHotelID          = "hotel_id"
	FieldOriginalCheckin  = "original_checkin"
	FieldOriginalCheckout = "original_checkout"
	FieldAdjustedCheckin  = "adjusted_checkin"
	FieldAdjustedCheckout = "adjusted_checkout"
	FieldStatus           = "status"
	FieldTotalAmount      = "total_amount"
	FieldNotes            = "notes"
)

// Status is the lifecycle state of a booking. Cancelled is terminal.
type Status string

const (
	StatusConfirmed   Status = "confirmed"
	StatusRescheduled Status = "rescheduled"
	StatusCancelled   Status = "cancelled"
)

// Valid reports whether s is one of the known booking statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusRescheduled, StatusCancelled:
		return true
	}

	return false
}

type Booking struct {
	ID               string     `db:"id"`
	PassengerID      string     `db:"passenger_id"`
	TrainID          string     `db:"train_id"`
	HotelID          string     `db:"hotel_id"`
	OriginalCheckin  time.Time  `db:"original_checkin"`
	OriginalCheckout time.Time  `db:"original_checkout"`
	AdjustedCheckin  *time.Time `db:"adjusted_checkin"`
	AdjustedCheckout *time.Time `db:"adjusted_checkout"`
	Status           Status     `db:"status"`
	TotalAmount      int64      `db:"total_amount"`
	Notes            string     `db:"notes"`
	model.Metadata
}

// EffectiveCheckin is the window start shown to travelers: the adjusted
// check-in when a delay produced one, the original otherwise.
func (b Booking) EffectiveCheckin() time.Time {
	if b.AdjustedCheckin != nil {
		return *b.AdjustedCheckin
	}

	return b.OriginalCheckin
}

// EffectiveCheckout mirrors EffectiveCheckin for the window end.
func (b Booking) EffectiveCheckout() time.Time {
	if b.AdjustedCheckout != nil {
		return *b.AdjustedCheckout
	}

	return b.OriginalCheckout
}

// BookingDetail is the read model joining a booking with its passenger,
// train, and hotel rows. Column tags resolve the name collisions between
// bookings.status and trains.status.
type BookingDetail struct {
	Booking
	PassengerUserID   *string           `db:"passenger_user_id"   table:"passengers" column:"user_id"`
	PassengerName     string            `db:"passenger_name"      table:"passengers" column:"full_name"`
	PassengerEmail    string            `db:"passenger_email"     table:"passengers" column:"email"`
	TrainNumber       string            `db:"train_number"        table:"trains"`
	TrainName         string            `db:"train_name"          table:"trains"`
	TrainStatus       trainModel.Status `db:"train_status"        table:"trains"     column:"status"`
	TrainDelayMinutes int               `db:"train_delay_minutes" table:"trains"     column:"delay_minutes"`
	HotelName         string            `db:"hotel_name"          table:"hotels"`
	HotelLocation     string            `db:"hotel_location"      table:"hotels"     column:"location"`
}

func (BookingDetail) GetJoinQuery() string {
	return `JOIN passengers ON passengers.id = bookings.passenger_id
		JOIN trains ON trains.id = bookings.train_id
		JOIN hotels ON hotels.id = bookings.hotel_id`
}
