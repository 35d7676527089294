package service

import (
	"context"
	"fmt"
	"math"
	"railstay/config"
	"railstay/infras/otel"
	"railstay/internal/delay"
	"railstay/internal/domains/booking/model"
	"railstay/internal/domains/booking/model/dto"
	"railstay/internal/domains/booking/repository"
	hotelModel "railstay/internal/domains/hotel/model"
	hotelRepo "railstay/internal/domains/hotel/repository"
	notificationService "railstay/internal/domains/notification/service"
	passengerModel "railstay/internal/domains/passenger/model"
	passengerRepo "railstay/internal/domains/passenger/repository"
	trainModel "railstay/internal/domains/train/model"
	trainRepo "railstay/internal/domains/train/repository"
	"railstay/shared"
	"railstay/shared/constant"
	gDto "railstay/shared/dto"
	"railstay/shared/failure"
	gModel "railstay/shared/model"
	"railstay/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) error
	Cancel(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Booking
	trainRepo     trainRepo.Train
	hotelRepo     hotelRepo.Hotel
	passengerRepo passengerRepo.Passenger
	notifier      notificationService.DelayNotification
	classifier    delay.Classifier
	cfg           *config.Config
	otel          otel.Otel
}

func New(
	repo repository.Booking,
	trainRepo trainRepo.Train,
	hotelRepo hotelRepo.Hotel,
	passengerRepo passengerRepo.Passenger,
	notifier notificationService.DelayNotification,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:          repo,
		trainRepo:     trainRepo,
		hotelRepo:     hotelRepo,
		passengerRepo: passengerRepo,
		notifier:      notifier,
		classifier:    delay.NewClassifier(cfg.Booking.MinorDelayMinutes),
		cfg:           cfg,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	checkIn, checkOut, err := req.ParseWindow()
	if err != nil {
		log.Error().Err(err).Msg("failed to parse booking window")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return res, failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	train, err := s.trainRepo.Get(ctx, shared.FilterByID(req.TrainID, trainModel.FieldID, trainModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get train")

		return res, fmt.Errorf("failed to get train: %w", err)
	}

	if train.ID == constant.Empty {
		return res, failure.BadRequestFromString("train does not exist") // nolint:wrapcheck
	}

	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.BadRequestFromString("hotel does not exist") // nolint:wrapcheck
	}

	passenger, err := s.resolvePassenger(ctx, req, user)
	if err != nil {
		return res, err
	}

	booking := req.ToModel(passenger.ID, checkIn, checkOut, s.price(checkIn, checkOut), user)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	detail := model.BookingDetail{
		Booking:           booking,
		PassengerUserID:   passenger.UserID,
		PassengerName:     passenger.FullName,
		PassengerEmail:    passenger.Email,
		TrainNumber:       train.TrainNumber,
		TrainName:         train.TrainName,
		TrainStatus:       train.Status,
		TrainDelayMinutes: train.DelayMinutes,
		HotelName:         hotel.HotelName,
		HotelLocation:     hotel.Location,
	}

	if dispatchErr := s.notifier.Dispatch(ctx, detail, delay.EventBookingCreated); dispatchErr != nil {
		log.Error().Err(dispatchErr).Str("booking_id", booking.ID).Msg("failed to dispatch created notification")
	}

	rendered, err := s.applyLiveState(detail)
	if err != nil {
		return res, err
	}

	res.FromDetail(rendered)

	return res, nil
}

// price is the flat nightly rate times the stay length, rounded up to whole
// nights. Later rescheduling never changes it.
func (s *serviceImpl) price(checkIn, checkOut time.Time) int64 {
	rate := s.cfg.Booking.NightlyRate
	if rate <= 0 {
		rate = constant.DefaultNightlyRate
	}

	nights := int64(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))

	return nights * rate
}

func (s *serviceImpl) resolvePassenger(ctx context.Context, req dto.CreateBookingRequest, user string) (passengerModel.Passenger, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    passengerModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    passengerModel.TableName,
			},
		},
	}

	passenger, err := s.passengerRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get passenger")

		return passenger, fmt.Errorf("failed to get passenger: %w", err)
	}

	if passenger.ID != constant.Empty {
		return passenger, nil
	}

	userID := user
	passenger = passengerModel.Passenger{
		ID:       uuid.NewString(),
		UserID:   &userID,
		FullName: req.PassengerName,
		Email:    req.PassengerEmail,
		Phone:    req.PassengerPhone,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.passengerRepo.Insert(ctx, passenger); err != nil {
		log.Error().Err(err).Msg("failed to create passenger")

		return passenger, fmt.Errorf("failed to create passenger: %w", err)
	}

	return passenger, nil
}

// applyLiveState reruns the delay engine against the train's current state so
// the rendered status and window never trust a stale stored adjustment. A
// stored cancelled status is absorbing and short-circuits the recompute.
func (s *serviceImpl) applyLiveState(detail model.BookingDetail) (model.BookingDetail, error) {
	if detail.Status == model.StatusCancelled {
		return detail, nil
	}

	severity, err := s.classifier.Classify(detail.TrainStatus, detail.TrainDelayMinutes)
	if err != nil {
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("corrupt train state on booking")

		return detail, failure.DataDefect(err) // nolint:wrapcheck
	}

	adjustment, err := delay.ComputeAdjustment(detail.OriginalCheckin, detail.OriginalCheckout, detail.TrainDelayMinutes, severity)
	if err != nil {
		log.Error().Err(err).Str("booking_id", detail.ID).Msg("corrupt stay window on booking")

		return detail, failure.DataDefect(err) // nolint:wrapcheck
	}

	detail.Status = delay.ResolveStatus(detail.Status, severity, false)
	detail.AdjustedCheckin = adjustment.CheckIn
	detail.AdjustedCheckout = adjustment.CheckOut

	return detail, nil
}

func (s *serviceImpl) renderDetails(details []model.BookingDetail, total, limit int) (dto.GetBookingsResponse, error) {
	var res dto.GetBookingsResponse

	rendered := make([]model.BookingDetail, 0, len(details))

	for _, detail := range details {
		live, err := s.applyLiveState(detail)
		if err != nil {
			// One corrupt row must not hide the rest of the dashboard.
			log.Error().Err(err).Str("booking_id", detail.ID).Msg("skipping booking with corrupt state")

			continue
		}

		rendered = append(rendered, live)
	}

	res.FromDetails(rendered, total, limit)

	return res, nil
}

// GetMine lists the current user's bookings, rendered through the delay
// engine so the traveler dashboard always reflects live train state.
func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMine")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    passengerModel.FieldUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    user,
				Table:    passengerModel.TableName,
			},
		},
	}

	return s.listDetails(ctx, params, filter)
}

// GetByHotel lists bookings for one hotel, same live rendering as GetMine.
func (s *serviceImpl) GetByHotel(ctx context.Context, hotelID string, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByHotel")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
		},
	}

	return s.listDetails(ctx, params, filter)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.listDetails(ctx, params, filter)
}

func (s *serviceImpl) listDetails(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	total, err := s.repo.CountDetails(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	details, err := s.repo.GetDetails(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	return s.renderDetails(details, total, params.Limit)
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	detail, err := s.repo.GetDetail(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	live, err := s.applyLiveState(detail)
	if err != nil {
		return res, err
	}

	res.FromDetail(live)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking exists")

		return fmt.Errorf("failed to check if booking exists: %w", err)
	}

	if !exist {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	return nil
}

// Cancel marks a booking cancelled and notifies. Cancelled bookings are kept,
// never deleted, and cancelling twice is a no-op.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	detail, err := s.repo.GetDetail(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return fmt.Errorf("failed to get booking: %w", err)
	}

	if detail.ID == constant.Empty {
		return failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if detail.Status == model.StatusCancelled {
		return nil
	}

	updatedFields := map[string]any{
		model.FieldStatus:        model.StatusCancelled,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	detail.Status = model.StatusCancelled

	if dispatchErr := s.notifier.Dispatch(ctx, detail, delay.EventBookingCancelled); dispatchErr != nil {
		log.Error().Err(dispatchErr).Str("booking_id", id).Msg("failed to dispatch cancelled notification")
	}

	return nil
}
