package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"railstay/config"
	"railstay/infras/otel/mocks"
	analyticsMocks "railstay/internal/domains/analytics/mocks"
	"railstay/internal/domains/analytics/model"
	"railstay/internal/domains/analytics/service"
	cacheMocks "railstay/shared/cache/mocks"
)

func TestAnalyticsService_GetSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := analyticsMocks.NewMockAnalytics(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	summary := model.Summary{
		TotalBookings:     12,
		ConfirmedBookings: 9,
		CancelledBookings: 3,
		TotalRevenue:      4_800_000,
		ConfirmedRevenue:  3_600_000,
		UniquePassengers:  7,
		HotelsUsed:        4,
		TrainsUsed:        5,
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantErr       bool
		wantConfirmed int
	}{
		{
			name: "cache hit",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:       false,
			wantConfirmed: 0,
		},
		{
			name: "cache miss, summary from db",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetSummary(gomock.Any()).
					Return(summary, nil)

				mockCache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr:       false,
			wantConfirmed: 9,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					GetSummary(gomock.Any()).
					Return(model.Summary{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.GetSummary(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantConfirmed, res.ConfirmedBookings)
		})
	}
}
