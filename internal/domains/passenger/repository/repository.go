package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"railstay/infras/otel"
	"railstay/infras/postgres"
	"railstay/internal/domains/passenger/model"
	gDto "railstay/shared/dto"
	gRepo "railstay/shared/repository"
)

type Passenger interface {
	Insert(ctx context.Context, model model.Passenger) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Passenger, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Passenger]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Passenger {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Passenger](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
