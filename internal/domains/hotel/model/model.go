package model

import (
	"railstay/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID           = "id"
	FieldHotelName    = "hotel_name"
	FieldLocation     = "location"
	FieldAddress      = "address"
	FieldRating       = "rating"
	FieldContactPhone = "contact_phone"
	FieldContactEmail = "contact_email"
)

type Hotel struct {
	ID           string  `db:"id"`
	HotelName    string  `db:"hotel_name"`
	Location     string  `db:"location"`
	Address      string  `db:"address"`
	Rating       float64 `db:"rating"`
	ContactPhone string  `db:"contact_phone"`
	ContactEmail string  `db:"contact_email"`
	model.Metadata
}
