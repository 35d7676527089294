package model

import (
	"railstay/shared/model"
	"time"
)

const (
	TableName  = "trains"
	EntityName = "train"

	FieldID                 = "id"
	FieldTrainNumber        = "train_number"
	FieldTrainName          = "train_name"
	FieldOrigin             = "origin"
	FieldDestination        = "destination"
	FieldScheduledDeparture = "scheduled_departure"
	FieldScheduledArrival   = "scheduled_arrival"
	FieldActualArrival      = "actual_arrival"
	FieldStatus             = "status"
	FieldDelayMinutes       = "delay_minutes"
)

// Status is the live running state of a train.
type Status string

const (
	StatusOnTime    Status = "on_time"
	StatusDelayed   Status = "delayed"
	StatusCancelled Status = "cancelled"
)

// Valid reports whether s is one of the known train statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOnTime, StatusDelayed, StatusCancelled:
		return true
	}

	return false
}

type Train struct {
	ID                 string     `db:"id"`
	TrainNumber        string     `db:"train_number"`
	TrainName          string     `db:"train_name"`
	Origin             string     `db:"origin"`
	Destination        string     `db:"destination"`
	ScheduledDeparture time.Time  `db:"scheduled_departure"`
	ScheduledArrival   time.Time  `db:"scheduled_arrival"`
	ActualArrival      *time.Time `db:"actual_arrival"`
	Status             Status     `db:"status"`
	DelayMinutes       int        `db:"delay_minutes"`
	model.Metadata
}
