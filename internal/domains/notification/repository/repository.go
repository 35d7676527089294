package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"railstay/infras/otel"
	"railstay/infras/postgres"
	"railstay/internal/domains/notification/model"
	gDto "railstay/shared/dto"
	gRepo "railstay/shared/repository"
)

// DelayNotification is append-only: rows are inserted and read, never
// updated or deleted.
type DelayNotification interface {
	Insert(ctx context.Context, model model.DelayNotification) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.DelayNotification, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.DelayNotification]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) DelayNotification {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.DelayNotification](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
