package dto

import (
	"railstay/internal/domains/notification/model"
	"railstay/shared"
	"time"
)

type SendNotificationRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Type      string `json:"type"       validate:"required,oneof=booking_created booking_rescheduled booking_cancelled"`
}

// BookingSummary echoes the resolved relations back to the caller, matching
// the shape of the delivery payload.
type BookingSummary struct {
	PassengerName string `json:"passenger_name"`
	TrainName     string `json:"train_name"`
	HotelName     string `json:"hotel_name"`
}

type SendNotificationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Booking BookingSummary `json:"booking"`
}

type NotificationResponse struct {
	ID               string `json:"id"`
	BookingID        string `json:"booking_id"`
	NotificationType string `json:"notification_type"`
	Message          string `json:"message"`
	SentAt           string `json:"sent_at"`
}

func (r *NotificationResponse) FromModel(mod model.DelayNotification) {
	r.ID = mod.ID
	r.BookingID = mod.BookingID
	r.NotificationType = mod.NotificationType
	r.Message = mod.Message
	r.SentAt = mod.SentAt.Format(time.RFC3339)
}

type GetNotificationsResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	TotalPage     int                    `json:"total_page"`
	TotalData     int                    `json:"total_data"`
}

func (r *GetNotificationsResponse) FromModels(models []model.DelayNotification, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Notifications = make([]NotificationResponse, len(models))
	for i, mod := range models {
		r.Notifications[i].FromModel(mod)
	}
}
