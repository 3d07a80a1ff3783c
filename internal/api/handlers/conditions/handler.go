package conditions

import (
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
)

const msgNewsUnavailable = "notícias indisponíveis no momento"

// Handler условия на пляже. Погода, волны и приливы всегда отвечают 200 (при сбое источника оценкой).
type Handler struct {
	service ConditionsService
	logger  Logger
}

func NewHandler(service ConditionsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Weather GET /api/v1/weather
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Weather(r.Context()))
}

// Waves GET /api/v1/waves
func (h *Handler) Waves(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Waves())
}

// Tides GET /api/v1/tides
func (h *Handler) Tides(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.Tides(r.Context()))
}

// News GET /api/v1/news
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.News(r.Context())
	if err != nil {
		h.logger.Warn("GET /news - Feed unavailable: %v", err)
		handlers.RespondError(w, http.StatusBadGateway, msgNewsUnavailable)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}
