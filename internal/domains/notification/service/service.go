package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"railstay/config"
	"railstay/infras/kafka"
	"railstay/infras/otel"
	"railstay/internal/delay"
	bookingModel "railstay/internal/domains/booking/model"
	bookingRepo "railstay/internal/domains/booking/repository"
	"railstay/internal/domains/notification/model"
	"railstay/internal/domains/notification/model/dto"
	"railstay/internal/domains/notification/repository"
	"railstay/shared"
	"railstay/shared/constant"
	gDto "railstay/shared/dto"
	"railstay/shared/failure"
	"railstay/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type DelayNotification interface {
	Send(ctx context.Context, req dto.SendNotificationRequest) (dto.SendNotificationResponse, error)
	Dispatch(ctx context.Context, detail bookingModel.BookingDetail, event delay.Event) error
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetNotificationsResponse, error)
}

type serviceImpl struct {
	repo        repository.DelayNotification
	bookingRepo bookingRepo.Booking
	kafkaClient kafka.Client
	cfg         *config.Config
	otel        otel.Otel
}

func New(repo repository.DelayNotification, bookingRepo bookingRepo.Booking, kafkaClient kafka.Client, cfg *config.Config, otel otel.Otel) DelayNotification {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		kafkaClient: kafkaClient,
		cfg:         cfg,
		otel:        otel,
	}
}

// Send resolves a booking with its relations, composes the message for the
// requested event, appends it to the log, and publishes it.
func (s *serviceImpl) Send(ctx context.Context, req dto.SendNotificationRequest) (res dto.SendNotificationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := s.bookingRepo.GetDetail(ctx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to get booking detail")

		return res, fmt.Errorf("failed to get booking detail: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	payload, err := s.publish(ctx, detail, delay.Event(req.Type))
	if err != nil {
		return res, err
	}

	res.Success = true
	res.Message = payload.Message
	res.Booking = dto.BookingSummary{
		PassengerName: detail.PassengerName,
		TrainName:     detail.TrainName,
		HotelName:     detail.HotelName,
	}

	return res, nil
}

// Dispatch composes and delivers a notification for a booking already loaded
// by the caller. Used by the booking and train services on status transitions.
func (s *serviceImpl) Dispatch(ctx context.Context, detail bookingModel.BookingDetail, event delay.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dispatch")
	defer scope.End()
	defer scope.TraceIfError(err)

	_, err = s.publish(ctx, detail, event)

	return err
}

func (s *serviceImpl) publish(ctx context.Context, detail bookingModel.BookingDetail, event delay.Event) (delay.Payload, error) {
	payload, err := delay.Compose(delay.BookingDetails{
		BookingID:        detail.ID,
		PassengerName:    detail.PassengerName,
		TrainName:        detail.TrainName,
		TrainNumber:      detail.TrainNumber,
		HotelName:        detail.HotelName,
		EffectiveCheckIn: detail.EffectiveCheckin(),
	}, event)
	if err != nil {
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("failed to compose notification")

		if errors.Is(err, delay.ErrMissingRelation) {
			return payload, failure.DataDefect(err) // nolint:wrapcheck
		}

		return payload, failure.BadRequest(err) // nolint:wrapcheck
	}

	notification := model.DelayNotification{
		ID:               uuid.NewString(),
		BookingID:        payload.BookingID,
		NotificationType: string(payload.NotificationType),
		Message:          payload.Message,
		SentAt:           timezone.Now(),
	}

	if err = s.repo.Insert(ctx, notification); err != nil {
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("failed to append notification log")

		return payload, fmt.Errorf("failed to append notification log: %w", err)
	}

	err = s.kafkaClient.SendMessages(ctx, s.cfg.Kafka.NotificationsTopic, kafka.Message{
		Key:   payload.BookingID,
		Value: payload,
	})
	if err != nil {
		// The log row is the source of truth; delivery is best effort.
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("failed to publish notification")
	}

	return payload, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetNotificationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count notifications")

		return res, fmt.Errorf("failed to count notifications: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get notifications")

		return res, fmt.Errorf("failed to get notifications: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}
