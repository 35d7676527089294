package service

import (
	"context"
	"fmt"
	"railstay/config"
	"railstay/infras/otel"
	"railstay/internal/delay"
	bookingModel "railstay/internal/domains/booking/model"
	bookingRepo "railstay/internal/domains/booking/repository"
	notificationService "railstay/internal/domains/notification/service"
	"railstay/internal/domains/train/model"
	"railstay/internal/domains/train/model/dto"
	"railstay/internal/domains/train/repository"
	"railstay/shared"
	"railstay/shared/cache"
	"railstay/shared/constant"
	gDto "railstay/shared/dto"
	"railstay/shared/failure"
	"railstay/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetTrain    = "train:get"
	cacheGetAllTrain = "train:gets"
	cacheCountTrain  = "train:count"
)

type Train interface {
	Create(ctx context.Context, req dto.CreateTrainRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTrainsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TrainResponse, error)
	Update(ctx context.Context, req dto.UpdateTrainRequest, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateTrainStatusRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo        repository.Train
	bookingRepo bookingRepo.Booking
	notifier    notificationService.DelayNotification
	classifier  delay.Classifier
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
}

func New(
	repo repository.Train,
	bookingRepo bookingRepo.Booking,
	notifier notificationService.DelayNotification,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Train {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		notifier:    notifier,
		classifier:  delay.NewClassifier(cfg.Booking.MinorDelayMinutes),
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTrainRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	train, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse train request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, train); err != nil {
		log.Error().Err(err).Msg("failed to create train")

		return fmt.Errorf("failed to create train: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrain)
		shared.InvalidateCaches(c, s.cache, cacheCountTrain)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTrainsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTrain, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for trains")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trains")

		return res, fmt.Errorf("failed to count trains: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get trains")

		return res, fmt.Errorf("failed to get trains: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save trains to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTrain, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for train count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count trains")

		return res, fmt.Errorf("failed to count trains: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save train count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TrainResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetTrain, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for train")

		return res, nil
	}

	train, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get train")

		return res, fmt.Errorf("failed to get train: %w", err)
	}

	if train.ID == constant.Empty {
		return res, failure.NotFound("train not found") // nolint:wrapcheck
	}

	res.FromModel(train)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save train to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTrainRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateTrainRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if train exists")

		return fmt.Errorf("failed to check if train exists: %w", err)
	}

	if !exist {
		return failure.NotFound("train not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update train")

		return fmt.Errorf("failed to update train: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

// UpdateStatus is the delay propagation entry point: it persists the train's
// new state, then reruns the delay engine over every non-cancelled booking on
// the train, persisting adjusted windows and status transitions and notifying
// on each transition into rescheduled or cancelled.
func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateTrainStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	status := model.Status(req.Status)
	if !status.Valid() {
		return failure.BadRequestFromString(fmt.Sprintf("unknown train status %q", req.Status)) // nolint:wrapcheck
	}

	delayMinutes := req.DelayMinutes
	if status != model.StatusDelayed {
		delayMinutes = 0
	}

	severity, err := s.classifier.Classify(status, delayMinutes)
	if err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if train exists")

		return fmt.Errorf("failed to check if train exists: %w", err)
	}

	if !exist {
		return failure.NotFound("train not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldStatus:        status,
		model.FieldDelayMinutes:  delayMinutes,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update train status")

		return fmt.Errorf("failed to update train status: %w", err)
	}

	if err = s.propagate(ctx, id, severity, delayMinutes, user); err != nil {
		return err
	}

	s.invalidate(ctx, id)

	return nil
}

// propagate applies one classified train state to all live bookings on the
// train. A corrupt booking row is logged and skipped so it cannot block the
// rest of the propagation.
func (s *serviceImpl) propagate(ctx context.Context, trainID string, severity delay.Severity, delayMinutes int, user string) error {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldTrainID,
				Operator: gDto.FilterOperatorEq,
				Value:    trainID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				ArgName:  "booking_status",
				Field:    bookingModel.FieldStatus,
				Operator: gDto.FilterOperatorNotEq,
				Value:    bookingModel.StatusCancelled,
				Table:    bookingModel.TableName,
			},
		},
	}

	details, err := s.bookingRepo.GetDetails(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("train_id", trainID).Msg("failed to get bookings for train")

		return fmt.Errorf("failed to get bookings for train: %w", err)
	}

	for _, detail := range details {
		if err := s.propagateOne(ctx, detail, severity, delayMinutes, user); err != nil {
			log.Error().Err(err).Str("booking_id", detail.ID).Msg("skipping booking during delay propagation")
		}
	}

	return nil
}

func (s *serviceImpl) propagateOne(ctx context.Context, detail bookingModel.BookingDetail, severity delay.Severity, delayMinutes int, user string) error {
	adjustment, err := delay.ComputeAdjustment(detail.OriginalCheckin, detail.OriginalCheckout, delayMinutes, severity)
	if err != nil {
		return failure.DataDefect(err) // nolint:wrapcheck
	}

	newStatus := delay.ResolveStatus(detail.Status, severity, false)

	updatedFields := map[string]any{
		bookingModel.FieldStatus: newStatus,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	// Cancellation freezes the last known window; every other severity
	// rewrites it, clearing the adjustment on a recovery to on time.
	if severity != delay.SeverityCancelled {
		updatedFields[bookingModel.FieldAdjustedCheckin] = adjustment.CheckIn
		updatedFields[bookingModel.FieldAdjustedCheckout] = adjustment.CheckOut
		detail.AdjustedCheckin = adjustment.CheckIn
		detail.AdjustedCheckout = adjustment.CheckOut
	}

	filter := shared.FilterByID(detail.ID, bookingModel.FieldID, bookingModel.TableName)

	if err = s.bookingRepo.Update(ctx, updatedFields, filter); err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}

	if newStatus == detail.Status {
		return nil
	}

	oldStatus := detail.Status
	detail.Status = newStatus

	var event delay.Event

	switch newStatus {
	case bookingModel.StatusRescheduled:
		event = delay.EventBookingRescheduled
	case bookingModel.StatusCancelled:
		event = delay.EventBookingCancelled
	default:
		// Reverting to confirmed restores the original window silently.
		return nil
	}

	if err = s.notifier.Dispatch(ctx, detail, event); err != nil {
		log.Error().Err(err).
			Str("booking_id", detail.ID).
			Str("from", string(oldStatus)).
			Str("to", string(newStatus)).
			Msg("failed to dispatch delay notification")
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if train exists")

		return fmt.Errorf("failed to check if train exists: %w", err)
	}

	if !exist {
		return failure.NotFound("train not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete train")

		return fmt.Errorf("failed to delete train: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTrain, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete train from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTrain)
		shared.InvalidateCaches(c, s.cache, cacheCountTrain)
	}()
}
