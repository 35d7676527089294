package dto

import (
	"railstay/internal/domains/hotel/model"
	"railstay/shared"
	gDto "railstay/shared/dto"
	gModel "railstay/shared/model"
	"railstay/shared/timezone"

	"github.com/google/uuid"
)

type CreateHotelRequest struct {
	HotelName    string  `json:"hotel_name"    validate:"required,max=100"`
	Location     string  `json:"location"      validate:"required,max=100"`
	Address      string  `json:"address"       validate:"omitempty,max=255"`
	Rating       float64 `json:"rating"        validate:"omitempty,min=1,max=5"`
	ContactPhone string  `json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail string  `json:"contact_email" validate:"omitempty,email,max=100"`
}

func (c *CreateHotelRequest) ToModel(user string) model.Hotel {
	return model.Hotel{
		ID:           uuid.NewString(),
		HotelName:    c.HotelName,
		Location:     c.Location,
		Address:      c.Address,
		Rating:       c.Rating,
		ContactPhone: c.ContactPhone,
		ContactEmail: c.ContactEmail,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateHotelRequest struct {
	HotelName    string  `db:"hotel_name"    json:"hotel_name"    validate:"omitempty,max=100"`
	Location     string  `db:"location"      json:"location"      validate:"omitempty,max=100"`
	Address      string  `db:"address"       json:"address"       validate:"omitempty,max=255"`
	Rating       float64 `db:"rating"        json:"rating"        validate:"omitempty,min=1,max=5"`
	ContactPhone string  `db:"contact_phone" json:"contact_phone" validate:"omitempty,max=20"`
	ContactEmail string  `db:"contact_email" json:"contact_email" validate:"omitempty,email,max=100"`
}

type HotelResponse struct {
	ID           string  `json:"id"`
	HotelName    string  `json:"hotel_name"`
	Location     string  `json:"location"`
	Address      string  `json:"address"`
	Rating       float64 `json:"rating"`
	ContactPhone string  `json:"contact_phone"`
	ContactEmail string  `json:"contact_email"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(mod model.Hotel) {
	r.ID = mod.ID
	r.HotelName = mod.HotelName
	r.Location = mod.Location
	r.Address = mod.Address
	r.Rating = mod.Rating
	r.ContactPhone = mod.ContactPhone
	r.ContactEmail = mod.ContactEmail
	r.Metadata.FromModel(mod.Metadata)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		r.Hotels[i].FromModel(mod)
	}
}
