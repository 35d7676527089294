package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"railstay/config"
	kafkaMocks "railstay/infras/kafka/mocks"
	"railstay/infras/otel/mocks"
	"railstay/internal/delay"
	bookingMocks "railstay/internal/domains/booking/mocks"
	bookingModel "railstay/internal/domains/booking/model"
	notificationMocks "railstay/internal/domains/notification/mocks"
	"railstay/internal/domains/notification/model"
	"railstay/internal/domains/notification/model/dto"
	"railstay/internal/domains/notification/service"
	gDto "railstay/shared/dto"
	"railstay/shared/timezone"
)

func TestNotificationService_Send(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockDelayNotification(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.NotificationsTopic = "railstay.notifications"

	svc := service.New(mockRepo, mockBookingRepo, mockKafka, cfg, mockOtel)

	checkIn := time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC)

	detail := bookingModel.BookingDetail{
		Booking: bookingModel.Booking{
			ID:               "booking-id-1",
			OriginalCheckin:  checkIn,
			OriginalCheckout: checkIn.Add(48 * time.Hour),
			Status:           bookingModel.StatusConfirmed,
		},
		PassengerName: "Budi Santoso",
		TrainNumber:   "IC-204",
		TrainName:     "Coastal Express",
		HotelName:     "Hotel Majapahit",
	}

	tests := []struct {
		name        string
		req         dto.SendNotificationRequest
		setupMock   func()
		wantErr     bool
		wantMessage string
	}{
		{
			name: "successful confirmation notification",
			req: dto.SendNotificationRequest{
				BookingID: "booking-id-1",
				Type:      "booking_created",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(detail, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, notification model.DelayNotification) error {
						assert.Equal(t, "booking-id-1", notification.BookingID)
						assert.Equal(t, "booking_created", notification.NotificationType)
						assert.Equal(t, "Booking confirmed for Budi Santoso on Coastal Express", notification.Message)
						return nil
					})

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "railstay.notifications", gomock.Any()).
					Return(nil)
			},
			wantErr:     false,
			wantMessage: "Booking confirmed for Budi Santoso on Coastal Express",
		},
		{
			name: "reschedule message interpolates the effective window",
			req: dto.SendNotificationRequest{
				BookingID: "booking-id-1",
				Type:      "booking_rescheduled",
			},
			setupMock: func() {
				adjusted := checkIn.Add(90 * time.Minute)

				shifted := detail
				shifted.AdjustedCheckin = &adjusted

				mockBookingRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(shifted, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "railstay.notifications", gomock.Any()).
					Return(nil)
			},
			wantErr:     false,
			wantMessage: "Booking rescheduled for Budi Santoso on Coastal Express (IC-204): check-in at Hotel Majapahit moved to 2026-03-10T15:30:00Z",
		},
		{
			name: "booking not found",
			req: dto.SendNotificationRequest{
				BookingID: "missing-id",
				Type:      "booking_created",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(bookingModel.BookingDetail{}, nil)
			},
			wantErr: true,
		},
		{
			name: "booking lookup error",
			req: dto.SendNotificationRequest{
				BookingID: "booking-id-1",
				Type:      "booking_created",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(bookingModel.BookingDetail{}, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "missing hotel relation",
			req: dto.SendNotificationRequest{
				BookingID: "booking-id-1",
				Type:      "booking_rescheduled",
			},
			setupMock: func() {
				broken := detail
				broken.HotelName = ""

				mockBookingRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(broken, nil)
			},
			wantErr: true,
		},
		{
			name: "append error",
			req: dto.SendNotificationRequest{
				BookingID: "booking-id-1",
				Type:      "booking_created",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(detail, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "publish failure does not fail the send",
			req: dto.SendNotificationRequest{
				BookingID: "booking-id-1",
				Type:      "booking_cancelled",
			},
			setupMock: func() {
				mockBookingRepo.EXPECT().
					GetDetail(gomock.Any(), gomock.Any()).
					Return(detail, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "railstay.notifications", gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr:     false,
			wantMessage: "Booking cancelled for Budi Santoso",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.Send(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.True(t, result.Success)
				assert.Equal(t, tt.wantMessage, result.Message)
				assert.Equal(t, "Budi Santoso", result.Booking.PassengerName)
			}
		})
	}
}

func TestNotificationService_Dispatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockDelayNotification(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Kafka.NotificationsTopic = "railstay.notifications"

	svc := service.New(mockRepo, mockBookingRepo, mockKafka, cfg, mockOtel)

	detail := bookingModel.BookingDetail{
		Booking: bookingModel.Booking{
			ID:     "booking-id-1",
			Status: bookingModel.StatusCancelled,
		},
		PassengerName: "Budi Santoso",
		TrainName:     "Coastal Express",
		TrainNumber:   "IC-204",
		HotelName:     "Hotel Majapahit",
	}

	tests := []struct {
		name      string
		detail    bookingModel.BookingDetail
		event     delay.Event
		setupMock func()
		wantErr   bool
	}{
		{
			name:   "successful dispatch",
			detail: detail,
			event:  delay.EventBookingCancelled,
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockKafka.EXPECT().
					SendMessages(gomock.Any(), "railstay.notifications", gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "missing passenger relation",
			detail: bookingModel.BookingDetail{
				Booking: bookingModel.Booking{ID: "booking-id-1"},
			},
			event:     delay.EventBookingCancelled,
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "unknown event",
			detail:    detail,
			event:     delay.Event("booking_teleported"),
			setupMock: func() {},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			err := svc.Dispatch(ctx, tt.detail, tt.event)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := notificationMocks.NewMockDelayNotification(ctrl)
	mockBookingRepo := bookingMocks.NewMockBooking(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockBookingRepo, mockKafka, cfg, mockOtel)

	tests := []struct {
		name      string
		params    gDto.QueryParams
		filter    gDto.FilterGroup
		setupMock func()
		wantErr   bool
		wantTotal int
	}{
		{
			name:   "successful listing",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.DelayNotification{
						{
							ID:               "notification-id-1",
							BookingID:        "booking-id-1",
							NotificationType: "booking_cancelled",
							Message:          "Booking cancelled for Budi Santoso",
							SentAt:           timezone.Now(),
						},
					}, nil)
			},
			wantErr:   false,
			wantTotal: 1,
		},
		{
			name:   "count error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
		{
			name:   "get all error",
			params: gDto.QueryParams{Limit: 10, Page: 1},
			filter: gDto.FilterGroup{},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("get all error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			result, err := svc.GetAll(ctx, tt.params, tt.filter)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantTotal, result.TotalData)
			}
		})
	}
}
