package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"railstay/config"
	"railstay/infras/otel/mocks"
	"railstay/internal/delay"
	bookingMocks "railstay/internal/domains/booking/mocks"
	"railstay/internal/domains/booking/model"
	"railstay/internal/domains/booking/model/dto"
	"railstay/internal/domains/booking/service"
	hotelMocks "railstay/internal/domains/hotel/mocks"
	hotelModel "railstay/internal/domains/hotel/model"
	notifierMocks "railstay/internal/domains/notification/service/mocks"
	passengerMocks "railstay/internal/domains/passenger/mocks"
	passengerModel "railstay/internal/domains/passenger/model"
	trainMocks "railstay/internal/domains/train/mocks"
	trainModel "railstay/internal/domains/train/model"
	"railstay/shared/constant"
	gDto "railstay/shared/dto"
)

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTrainRepo := trainMocks.NewMockTrain(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockPassengerRepo := passengerMocks.NewMockPassenger(ctrl)
	mockNotifier := notifierMocks.NewMockDelayNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.MinorDelayMinutes = 60
	cfg.Booking.NightlyRate = 500000

	svc := service.New(mockRepo, mockTrainRepo, mockHotelRepo, mockPassengerRepo, mockNotifier, cfg, mockOtel)

	train := trainModel.Train{
		ID:          "train-id-1",
		TrainNumber: "IC-204",
		TrainName:   "Coastal Express",
		Status:      trainModel.StatusOnTime,
	}

	hotel := hotelModel.Hotel{
		ID:        "hotel-id-1",
		HotelName: "Hotel Majapahit",
		Location:  "Surabaya",
	}

	userID := "user-id-1"
	passenger := passengerModel.Passenger{
		ID:       "passenger-id-1",
		UserID:   &userID,
		FullName: "Budi Santoso",
		Email:    "budi@example.com",
	}

	validReq := dto.CreateBookingRequest{
		TrainID:        "train-id-1",
		HotelID:        "hotel-id-1",
		PassengerName:  "Budi Santoso",
		PassengerEmail: "budi@example.com",
		CheckIn:        "2026-03-10T14:00:00Z",
		CheckOut:       "2026-03-12T11:00:00Z",
	}

	tests := []struct {
		name       string
		req        dto.CreateBookingRequest
		setupMock  func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "successful creation with existing passenger",
			req:  validReq,
			setupMock: func() {
				mockTrainRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(train, nil)

				mockHotelRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotel, nil)

				mockPassengerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(passenger, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, booking model.Booking) error {
						assert.Equal(t, model.StatusConfirmed, booking.Status)
						assert.Equal(t, "passenger-id-1", booking.PassengerID)
						// Two nights at the configured rate.
						assert.Equal(t, int64(1000000), booking.TotalAmount)
						return nil
					})

				mockNotifier.EXPECT().
					Dispatch(gomock.Any(), gomock.Any(), delay.EventBookingCreated).
					Return(nil)
			},
			wantErr:    false,
			wantStatus: "confirmed",
		},
		{
			name: "creates passenger on first booking",
			req:  validReq,
			setupMock: func() {
				mockTrainRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(train, nil)

				mockHotelRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotel, nil)

				mockPassengerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(passengerModel.Passenger{}, nil)

				mockPassengerRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p passengerModel.Passenger) error {
						assert.Equal(t, "Budi Santoso", p.FullName)
						assert.NotNil(t, p.UserID)
						assert.Equal(t, "user-id-1", *p.UserID)
						return nil
					})

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Dispatch(gomock.Any(), gomock.Any(), delay.EventBookingCreated).
					Return(nil)
			},
			wantErr:    false,
			wantStatus: "confirmed",
		},
		{
			name: "booking on a delayed train renders rescheduled immediately",
			req:  validReq,
			setupMock: func() {
				delayedTrain := train
				delayedTrain.Status = trainModel.StatusDelayed
				delayedTrain.DelayMinutes = 90

				mockTrainRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(delayedTrain, nil)

				mockHotelRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotel, nil)

				mockPassengerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(passenger, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Dispatch(gomock.Any(), gomock.Any(), delay.EventBookingCreated).
					Return(nil)
			},
			wantErr:    false,
			wantStatus: "rescheduled",
		},
		{
			name: "invalid check-in format",
			req: dto.CreateBookingRequest{
				TrainID:  "train-id-1",
				HotelID:  "hotel-id-1",
				CheckIn:  "tomorrow",
				CheckOut: "2026-03-12T11:00:00Z",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "check-out before check-in",
			req: dto.CreateBookingRequest{
				TrainID:  "train-id-1",
				HotelID:  "hotel-id-1",
				CheckIn:  "2026-03-12T11:00:00Z",
				CheckOut: "2026-03-10T14:00:00Z",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "train does not exist",
			req:  validReq,
			setupMock: func() {
				mockTrainRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(trainModel.Train{}, nil)
			},
			wantErr: true,
		},
		{
			name: "hotel does not exist",
			req:  validReq,
			setupMock: func() {
				mockTrainRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(train, nil)

				mockHotelRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotelModel.Hotel{}, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req:  validReq,
			setupMock: func() {
				mockTrainRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(train, nil)

				mockHotelRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotel, nil)

				mockPassengerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(passenger, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "dispatch failure does not fail the creation",
			req:  validReq,
			setupMock: func() {
				mockTrainRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(train, nil)

				mockHotelRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(hotel, nil)

				mockPassengerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(passenger, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockNotifier.EXPECT().
					Dispatch(gomock.Any(), gomock.Any(), delay.EventBookingCreated).
					Return(errors.New("broker unavailable"))
			},
			wantErr:    false,
			wantStatus: "confirmed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-1")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, result.Status)
			}
		})
	}
}

func TestBookingService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTrainRepo := trainMocks.NewMockTrain(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockPassengerRepo := passengerMocks.NewMockPassenger(ctrl)
	mockNotifier := notifierMocks.NewMockDelayNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.MinorDelayMinutes = 60

	svc := service.New(mockRepo, mockTrainRepo, mockHotelRepo, mockPassengerRepo, mockNotifier, cfg, mockOtel)

	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	detail := model.BookingDetail{
		Booking: model.Booking{
			ID:               "booking-id-1",
			OriginalCheckin:  checkIn,
			OriginalCheckout: checkOut,
			Status:           model.StatusConfirmed,
		},
		PassengerName: "Budi Santoso",
		TrainNumber:   "IC-204",
		TrainName:     "Coastal Express",
		TrainStatus:   trainModel.StatusOnTime,
		HotelName:     "Hotel Majapahit",
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		check     func(t *testing.T, res dto.BookingResponse)
	}{
		{
			name: "on time train renders the original window",
			id:   "booking-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(detail, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "confirmed", res.Status)
				assert.Nil(t, res.AdjustedCheckin)
				assert.Equal(t, "2026-03-10T14:00:00Z", res.EffectiveCheckin)
			},
		},
		{
			name: "delayed train recomputes the window on read",
			id:   "booking-id-1",
			setupMock: func() {
				live := detail
				live.TrainStatus = trainModel.StatusDelayed
				live.TrainDelayMinutes = 90

				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(live, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "rescheduled", res.Status)
				assert.NotNil(t, res.AdjustedCheckin)
				assert.Equal(t, "2026-03-10T15:30:00Z", res.EffectiveCheckin)
				assert.Equal(t, "2026-03-12T15:30:00Z", res.EffectiveCheckout)
			},
		},
		{
			name: "stored cancellation wins over live train state",
			id:   "booking-id-1",
			setupMock: func() {
				cancelled := detail
				cancelled.Status = model.StatusCancelled
				cancelled.TrainStatus = trainModel.StatusOnTime

				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: false,
			check: func(t *testing.T, res dto.BookingResponse) {
				assert.Equal(t, "cancelled", res.Status)
			},
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(model.BookingDetail{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			id:   "booking-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(model.BookingDetail{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Get(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				tt.check(t, result)
			}
		})
	}
}

func TestBookingService_GetMine(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTrainRepo := trainMocks.NewMockTrain(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockPassengerRepo := passengerMocks.NewMockPassenger(ctrl)
	mockNotifier := notifierMocks.NewMockDelayNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.MinorDelayMinutes = 60

	svc := service.New(mockRepo, mockTrainRepo, mockHotelRepo, mockPassengerRepo, mockNotifier, cfg, mockOtel)

	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(48 * time.Hour)

	healthy := model.BookingDetail{
		Booking: model.Booking{
			ID:               "booking-id-1",
			OriginalCheckin:  checkIn,
			OriginalCheckout: checkOut,
			Status:           model.StatusConfirmed,
		},
		TrainStatus: trainModel.StatusOnTime,
	}

	corrupt := model.BookingDetail{
		Booking: model.Booking{
			ID:               "booking-id-2",
			OriginalCheckin:  checkOut,
			OriginalCheckout: checkIn,
			Status:           model.StatusConfirmed,
		},
		TrainStatus: trainModel.StatusOnTime,
	}

	tests := []struct {
		name      string
		params    gDto.QueryParams
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name:   "successful listing",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockRepo.EXPECT().
					CountDetails(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.BookingDetail{healthy}, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:   "corrupt row is skipped",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockRepo.EXPECT().
					CountDetails(gomock.Any(), gomock.Any()).
					Return(2, nil)

				mockRepo.EXPECT().
					GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.BookingDetail{healthy, corrupt}, nil)
			},
			wantErr: false,
			wantLen: 1,
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockRepo.EXPECT().
					CountDetails(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name:   "get details error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			setupMock: func() {
				mockRepo.EXPECT().
					CountDetails(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetDetails(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get details error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-1")
			result, err := svc.GetMine(ctx, tt.params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result.Bookings, tt.wantLen)
			}
		})
	}
}

func TestBookingService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTrainRepo := trainMocks.NewMockTrain(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockPassengerRepo := passengerMocks.NewMockPassenger(ctrl)
	mockNotifier := notifierMocks.NewMockDelayNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Booking.MinorDelayMinutes = 60

	svc := service.New(mockRepo, mockTrainRepo, mockHotelRepo, mockPassengerRepo, mockNotifier, cfg, mockOtel)

	detail := model.BookingDetail{
		Booking: model.Booking{
			ID:     "booking-id-1",
			Status: model.StatusConfirmed,
		},
		PassengerName: "Budi Santoso",
	}

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful cancellation",
			id:   "booking-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(detail, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCancelled, fields[model.FieldStatus])
						return nil
					})

				mockNotifier.EXPECT().
					Dispatch(gomock.Any(), gomock.Any(), delay.EventBookingCancelled).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cancelling twice is a no-op",
			id:   "booking-id-1",
			setupMock: func() {
				cancelled := detail
				cancelled.Status = model.StatusCancelled

				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: false,
		},
		{
			name: "booking not found",
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(model.BookingDetail{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			id:   "booking-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(detail, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-1")
			err := svc.Cancel(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := bookingMocks.NewMockBooking(ctrl)
	mockTrainRepo := trainMocks.NewMockTrain(ctrl)
	mockHotelRepo := hotelMocks.NewMockHotel(ctrl)
	mockPassengerRepo := passengerMocks.NewMockPassenger(ctrl)
	mockNotifier := notifierMocks.NewMockDelayNotification(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockTrainRepo, mockHotelRepo, mockPassengerRepo, mockNotifier, cfg, mockOtel)

	tests := []struct {
		name      string
		req       dto.UpdateBookingRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateBookingRequest{Notes: "late arrival"},
			id:   "booking-id-1",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty request",
			req:       dto.UpdateBookingRequest{},
			id:        "booking-id-1",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "booking not found",
			req:  dto.UpdateBookingRequest{Notes: "late arrival"},
			id:   "missing-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "user-id-1")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
