package dto

import (
	"railstay/internal/domains/booking/model"
	"railstay/shared"
	gDto "railstay/shared/dto"
	gModel "railstay/shared/model"
	"railstay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TrainID        string `json:"train_id"        validate:"required,uuid"`
	HotelID        string `json:"hotel_id"        validate:"required,uuid"`
	PassengerName  string `json:"passenger_name"  validate:"required,max=100"`
	PassengerEmail string `json:"passenger_email" validate:"omitempty,email,max=100"`
	PassengerPhone string `json:"passenger_phone" validate:"omitempty,max=20"`
	CheckIn        string `json:"check_in"        validate:"required"`
	CheckOut       string `json:"check_out"       validate:"required"`
	Notes          string `json:"notes"           validate:"omitempty,max=500"`
}

// ParseWindow parses the requested stay window.
func (c *CreateBookingRequest) ParseWindow() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(time.RFC3339, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = time.Parse(time.RFC3339, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(passengerID string, checkIn, checkOut time.Time, totalAmount int64, user string) model.Booking {
	return model.Booking{
		ID:               uuid.NewString(),
		PassengerID:      passengerID,
		TrainID:          c.TrainID,
		HotelID:          c.HotelID,
		OriginalCheckin:  checkIn,
		OriginalCheckout: checkOut,
		Status:           model.StatusConfirmed,
		TotalAmount:      totalAmount,
		Notes:            c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateBookingRequest struct {
	Notes string `db:"notes" json:"notes" validate:"omitempty,max=500"`
}

type BookingResponse struct {
	ID                string  `json:"id"`
	Status            string  `json:"status"`
	PassengerName     string  `json:"passenger_name"`
	PassengerEmail    string  `json:"passenger_email"`
	TrainNumber       string  `json:"train_number"`
	TrainName         string  `json:"train_name"`
	TrainStatus       string  `json:"train_status"`
	TrainDelayMinutes int     `json:"train_delay_minutes"`
	HotelName         string  `json:"hotel_name"`
	HotelLocation     string  `json:"hotel_location"`
	OriginalCheckin   string  `json:"original_checkin"`
	OriginalCheckout  string  `json:"original_checkout"`
	AdjustedCheckin   *string `json:"adjusted_checkin,omitempty"`
	AdjustedCheckout  *string `json:"adjusted_checkout,omitempty"`
	EffectiveCheckin  string  `json:"effective_checkin"`
	EffectiveCheckout string  `json:"effective_checkout"`
	TotalAmount       int64   `json:"total_amount"`
	Notes             string  `json:"notes"`
	gDto.Metadata
}

func (r *BookingResponse) FromDetail(detail model.BookingDetail) {
	r.ID = detail.ID
	r.Status = string(detail.Status)
	r.PassengerName = detail.PassengerName
	r.PassengerEmail = detail.PassengerEmail
	r.TrainNumber = detail.TrainNumber
	r.TrainName = detail.TrainName
	r.TrainStatus = string(detail.TrainStatus)
	r.TrainDelayMinutes = detail.TrainDelayMinutes
	r.HotelName = detail.HotelName
	r.HotelLocation = detail.HotelLocation
	r.OriginalCheckin = detail.OriginalCheckin.Format(time.RFC3339)
	r.OriginalCheckout = detail.OriginalCheckout.Format(time.RFC3339)
	r.EffectiveCheckin = detail.EffectiveCheckin().Format(time.RFC3339)
	r.EffectiveCheckout = detail.EffectiveCheckout().Format(time.RFC3339)
	r.TotalAmount = detail.TotalAmount
	r.Notes = detail.Notes

	if detail.AdjustedCheckin != nil {
		adjusted := detail.AdjustedCheckin.Format(time.RFC3339)
		r.AdjustedCheckin = &adjusted
	}

	if detail.AdjustedCheckout != nil {
		adjusted := detail.AdjustedCheckout.Format(time.RFC3339)
		r.AdjustedCheckout = &adjusted
	}

	r.Metadata.FromModel(detail.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromDetails(details []model.BookingDetail, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(details))
	for i, detail := range details {
		r.Bookings[i].FromDetail(detail)
	}
}
