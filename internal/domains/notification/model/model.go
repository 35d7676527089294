package model

import (
	"time"
)

const (
	TableName  = "delay_notifications"
	EntityName = "delay_notification"

	FieldID               = "id"
	FieldBookingID        = "booking_id"
	FieldNotificationType = "notification_type"
	FieldMessage          = "message"
	FieldSentAt           = "sent_at"
)

// DelayNotification is an append-only log row. Rows are never updated or
// deleted, so the audit metadata collapses to sent_at.
type DelayNotification struct {
	ID               string    `db:"id"`
	BookingID        string    `db:"booking_id"`
	NotificationType string    `db:"notification_type"`
	Message          string    `db:"message"`
	SentAt           time.Time `db:"sent_at"`
}
