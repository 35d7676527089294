package notification

import (
	"net/http"
	"railstay/infras/otel"
	"railstay/internal/domains/notification/model"
	"railstay/internal/domains/notification/model/dto"
	"railstay/internal/domains/notification/service"
	"railstay/shared/constant"
	gDto "railstay/shared/dto"
	"railstay/shared/validator"
	"railstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.DelayNotification
	otel    otel.Otel
}

func New(service service.DelayNotification, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/notifications", func(routerGroup chi.Router) {
		routerGroup.Post("/send", handler.SendNotification)
		routerGroup.Get("/", handler.GetNotifications)
	})
}

// SendNotification composes and records a notification for a booking.
// @Summary Send a booking notification
// @Description Compose a notification for the given booking and record it in the delivery log.
// @Tags Notification
// @Accept json
// @Produce json
// @Param request body dto.SendNotificationRequest true "Send Notification Request"
// @Success 200 {object} dto.SendNotificationResponse "Notification sent"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications/send [post]
// @Security BearerAuth
func (handler *Handler) SendNotification(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SendNotification")
	defer scope.End()

	req := dto.SendNotificationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	result, err := handler.service.Send(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to send notification")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Notification sent for booking " + req.BookingID)

	response.WithJSON(writer, http.StatusOK, result)
}

// GetNotifications retrieves the notification log.
// @Summary Get notification log
// @Description Retrieve recorded notifications with optional filtering and pagination, newest first.
// @Tags Notification
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param booking_id query string false "Filter by booking ID"
// @Param notification_type query string false "Filter by notification type"
// @Success 200 {object} response.Data[dto.GetNotificationsResponse] "List of notifications"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/notifications [get]
// @Security BearerAuth
func (handler *Handler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNotifications")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	// The log table has no created_at, sent_at is the only timeline.
	if queryParams.SortBy == "" {
		queryParams.SortBy = model.FieldSentAt
		queryParams.SortDir = gDto.SortDirDesc
	}

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if bookingID := r.URL.Query().Get(model.FieldBookingID); bookingID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldBookingID,
			Operator: gDto.FilterOperatorEq,
			Value:    bookingID,
			Table:    model.TableName,
		})
	}

	if notificationType := r.URL.Query().Get(model.FieldNotificationType); notificationType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldNotificationType,
			Operator: gDto.FilterOperatorEq,
			Value:    notificationType,
			Table:    model.TableName,
		})
	}

	notifications, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get notifications")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Notifications retrieved successfully")

	response.WithJSON(w, http.StatusOK, notifications)
}
