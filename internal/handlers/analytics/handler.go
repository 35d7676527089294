package analytics

import (
	"net/http"
	"railstay/infras/otel"
	"railstay/internal/domains/analytics/service"
	"railstay/shared/constant"
	"railstay/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Analytics
	otel    otel.Otel
}

func New(service service.Analytics, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/analytics", func(routerGroup chi.Router) {
		routerGroup.Get("/summary", handler.GetSummary)
	})
}

// GetSummary returns aggregate booking and delay figures.
// @Summary Get analytics summary
// @Description Retrieve aggregate counts of bookings, delays, and notifications.
// @Tags Analytics
// @Accept json
// @Produce json
// @Success 200 {object} dto.SummaryResponse "Analytics summary"
// @Failure 500 {object} response.Error
// @Router /v1/analytics/summary [get]
// @Security BearerAuth
func (handler *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSummary")
	defer scope.End()

	summary, err := handler.service.GetSummary(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get analytics summary")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Analytics summary retrieved successfully")

	response.WithJSON(w, http.StatusOK, summary)
}
