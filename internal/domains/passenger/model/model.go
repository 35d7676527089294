package model

import (
	"railstay/shared/model"
)

const (
	TableName  = "passengers"
	EntityName = "passenger"

	FieldID       = "id"
	FieldUserID   = "user_id"
	FieldFullName = "full_name"
	FieldEmail    = "email"
	FieldPhone    = "phone"
)

type Passenger struct {
	ID       string  `db:"id"`
	UserID   *string `db:"user_id"`
	FullName string  `db:"full_name"`
	Email    string  `db:"email"`
	Phone    string  `db:"phone"`
	model.Metadata
}
