package dto

import (
	"railstay/internal/domains/train/model"
	"railstay/shared"
	gDto "railstay/shared/dto"
	gModel "railstay/shared/model"
	"railstay/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateTrainRequest struct {
	TrainNumber        string `json:"train_number"        validate:"required,max=20"`
	TrainName          string `json:"train_name"          validate:"required,max=100"`
	Origin             string `json:"origin"              validate:"required,max=100"`
	Destination        string `json:"destination"         validate:"required,max=100"`
	ScheduledDeparture string `json:"scheduled_departure" validate:"required"`
	ScheduledArrival   string `json:"scheduled_arrival"   validate:"required"`
}

func (c *CreateTrainRequest) ToModel(user string) (model.Train, error) {
	departure, err := time.Parse(time.RFC3339, c.ScheduledDeparture)
	if err != nil {
		return model.Train{}, err
	}

	arrival, err := time.Parse(time.RFC3339, c.ScheduledArrival)
	if err != nil {
		return model.Train{}, err
	}

	return model.Train{
		ID:                 uuid.NewString(),
		TrainNumber:        c.TrainNumber,
		TrainName:          c.TrainName,
		Origin:             c.Origin,
		Destination:        c.Destination,
		ScheduledDeparture: departure,
		ScheduledArrival:   arrival,
		Status:             model.StatusOnTime,
		DelayMinutes:       0,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateTrainRequest struct {
	TrainNumber string `db:"train_number" json:"train_number" validate:"omitempty,max=20"`
	TrainName   string `db:"train_name"   json:"train_name"   validate:"omitempty,max=100"`
	Origin      string `db:"origin"       json:"origin"       validate:"omitempty,max=100"`
	Destination string `db:"destination"  json:"destination"  validate:"omitempty,max=100"`
}

// UpdateTrainStatusRequest drives the delay propagation. DelayMinutes is
// meaningful only while the status is delayed and is reset to zero otherwise.
type UpdateTrainStatusRequest struct {
	Status       string `json:"status"        validate:"required,oneof=on_time delayed cancelled"`
	DelayMinutes int    `json:"delay_minutes" validate:"omitempty,min=0"`
}

type TrainResponse struct {
	ID                 string  `json:"id"`
	TrainNumber        string  `json:"train_number"`
	TrainName          string  `json:"train_name"`
	Origin             string  `json:"origin"`
	Destination        string  `json:"destination"`
	ScheduledDeparture string  `json:"scheduled_departure"`
	ScheduledArrival   string  `json:"scheduled_arrival"`
	ActualArrival      *string `json:"actual_arrival,omitempty"`
	Status             string  `json:"status"`
	DelayMinutes       int     `json:"delay_minutes"`
	gDto.Metadata
}

func (r *TrainResponse) FromModel(mod model.Train) {
	r.ID = mod.ID
	r.TrainNumber = mod.TrainNumber
	r.TrainName = mod.TrainName
	r.Origin = mod.Origin
	r.Destination = mod.Destination
	r.ScheduledDeparture = mod.ScheduledDeparture.Format(time.RFC3339)
	r.ScheduledArrival = mod.ScheduledArrival.Format(time.RFC3339)
	r.Status = string(mod.Status)
	r.DelayMinutes = mod.DelayMinutes

	if mod.ActualArrival != nil {
		arrival := mod.ActualArrival.Format(time.RFC3339)
		r.ActualArrival = &arrival
	}

	r.Metadata.FromModel(mod.Metadata)
}

type GetTrainsResponse struct {
	Trains    []TrainResponse `json:"trains"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTrainsResponse) FromModels(models []model.Train, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Trains = make([]TrainResponse, len(models))
	for i, mod := range models {
		r.Trains[i].FromModel(mod)
	}
}
