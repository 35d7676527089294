package train

import (
	"net/http"
	"railstay/infras/otel"
	"railstay/internal/domains/train/model"
	"railstay/internal/domains/train/model/dto"
	"railstay/internal/domains/train/service"
	"railstay/shared/constant"
	gDto "railstay/shared/dto"
	"railstay/shared/validator"
	"railstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Train
	otel    otel.Otel
}

func New(service service.Train, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/trains", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateTrain)
		routerGroup.Get("/", handler.GetTrains)
		routerGroup.Get("/{id}", handler.GetTrainByID)
		routerGroup.Patch("/{id}", handler.UpdateTrain)
		routerGroup.Patch("/{id}/status", handler.UpdateTrainStatus)
		routerGroup.Delete("/{id}", handler.DeleteTrain)
	})
}

// CreateTrain handles the creation of a new train.
// @Summary Create a new train
// @Description Create a new train with its schedule.
// @Tags Train
// @Accept json
// @Produce json
// @Param request body dto.CreateTrainRequest true "Create Train Request"
// @Success 201 {object} response.Message "Train created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains [post]
// @Security BearerAuth
func (handler *Handler) CreateTrain(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTrain")
	defer scope.End()

	req := dto.CreateTrainRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create train")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Train created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Train created successfully")
}

// GetTrains retrieves all trains based on query parameters.
// @Summary Get all trains
// @Description Retrieve all trains with optional filtering and pagination.
// @Tags Train
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param train_name query string false "Filter by train name"
// @Param status query string false "Filter by status (on_time, delayed, cancelled)"
// @Success 200 {object} response.Data[dto.GetTrainsResponse] "List of trains"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains [get]
func (handler *Handler) GetTrains(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrains")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if trainName := r.URL.Query().Get(model.FieldTrainName); trainName != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldTrainName,
			Operator: gDto.FilterOperatorLike,
			Value:    trainName,
			Table:    model.TableName,
		})
	}

	if status := r.URL.Query().Get(model.FieldStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	trains, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get trains")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Trains retrieved successfully")

	response.WithJSON(w, http.StatusOK, trains)
}

// GetTrainByID retrieves a train by its ID.
// @Summary Get a train by ID
// @Description Retrieve a train by its unique identifier.
// @Tags Train
// @Accept json
// @Produce json
// @Param id path string true "Train ID"
// @Success 200 {object} dto.TrainResponse "Train details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains/{id} [get]
func (handler *Handler) GetTrainByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTrainByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	train, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get train by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train retrieved successfully")

	response.WithJSON(w, http.StatusOK, train)
}

// UpdateTrain updates an existing train's descriptive fields.
// @Summary Update a train by ID
// @Description Update the descriptive details of an existing train.
// @Tags Train
// @Accept json
// @Produce json
// @Param id path string true "Train ID"
// @Param request body dto.UpdateTrainRequest true "Update Train Request"
// @Success 200 {object} response.Message "Train updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTrain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTrain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTrainRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update train")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train updated successfully")

	response.WithMessage(w, http.StatusOK, "Train updated successfully")
}

// UpdateTrainStatus updates a train's operational status and propagates the
// resulting delay to every booking on the train.
// @Summary Update a train's status
// @Description Update a train's status and delay, rescheduling or cancelling affected bookings.
// @Tags Train
// @Accept json
// @Produce json
// @Param id path string true "Train ID"
// @Param request body dto.UpdateTrainStatusRequest true "Update Train Status Request"
// @Success 200 {object} response.Message "Train status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTrainStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTrainStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTrainStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update train status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train status updated successfully")

	response.WithMessage(w, http.StatusOK, "Train status updated successfully")
}

// DeleteTrain deletes a train by its ID.
// @Summary Delete a train by ID
// @Description Delete a train by its unique identifier.
// @Tags Train
// @Accept json
// @Produce json
// @Param id path string true "Train ID"
// @Success 200 {object} response.Message "Train deleted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/trains/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTrain(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTrain")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete train")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Train deleted successfully")

	response.WithMessage(w, http.StatusOK, "Train deleted successfully")
}
