package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"railstay/infras/otel"
	"railstay/infras/postgres"
	"railstay/internal/domains/analytics/model"
	"railstay/shared/constant"
	"railstay/shared/logger"
)

const summaryQuery = `
	SELECT
		COUNT(*) AS total_bookings,
		COUNT(*) FILTER (WHERE status = 'confirmed') AS confirmed_bookings,
		COUNT(*) FILTER (WHERE status = 'cancelled') AS cancelled_bookings,
		COALESCE(SUM(total_amount), 0) AS total_revenue,
		COALESCE(SUM(total_amount) FILTER (WHERE status = 'confirmed'), 0) AS confirmed_revenue,
		COUNT(DISTINCT passenger_id) AS unique_passengers,
		COUNT(DISTINCT hotel_id) AS hotels_used,
		COUNT(DISTINCT train_id) AS trains_used
	FROM bookings`

type Analytics interface {
	GetSummary(ctx context.Context) (model.Summary, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Analytics {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) GetSummary(ctx context.Context) (model.Summary, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".GetSummary")
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, summaryQuery)

	var summary model.Summary

	err := repo.db.Read.GetContext(ctx, &summary, summaryQuery)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return summary, fmt.Errorf("failed to get analytics summary: %w", err)
	}

	return summary, nil
}
