package check_alerts

import (
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
)

type Handler struct {
	useCase CheckAlertsUseCase
	logger  Logger
}

func NewHandler(useCase CheckAlertsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rentals/check-alerts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.useCase.Execute(r.Context())
	if err != nil {
		h.logger.Error("GET /rentals/check-alerts - Failed to check alerts: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if len(alerts) > 0 {
		h.logger.Info("GET /rentals/check-alerts - %d new alerts", len(alerts))
	}
	handlers.RespondJSON(w, http.StatusOK, alerts)
}
