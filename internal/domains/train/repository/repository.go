package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"railstay/infras/otel"
	"railstay/infras/postgres"
	"railstay/internal/domains/train/model"
	gDto "railstay/shared/dto"
	gRepo "railstay/shared/repository"
)

type Train interface {
	Insert(ctx context.Context, model model.Train) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Train, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Train, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Train]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Train {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Train](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
