package service

import (
	"context"
	"fmt"
	"railstay/config"
	"railstay/infras/otel"
	"railstay/internal/domains/analytics/model/dto"
	"railstay/internal/domains/analytics/repository"
	"railstay/shared/cache"
	"railstay/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	cacheSummary = "analytics:summary"
)

type Analytics interface {
	GetSummary(ctx context.Context) (dto.SummaryResponse, error)
}

type serviceImpl struct {
	repo  repository.Analytics
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Analytics, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Analytics {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetSummary(ctx context.Context) (res dto.SummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSummary")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheSummary, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheSummary).Msg("cache hit for analytics summary")

		return res, nil
	}

	summary, err := s.repo.GetSummary(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get analytics summary")

		return res, fmt.Errorf("failed to get analytics summary: %w", err)
	}

	res.FromModel(summary)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSummary, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save analytics summary to cache")
		}
	}()

	return res, nil
}
