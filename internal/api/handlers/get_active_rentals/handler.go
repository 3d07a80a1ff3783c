package get_active_rentals

import (
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
)

type Handler struct {
	service RentalsService
	logger  Logger
}

func NewHandler(service RentalsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rentals/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.service.Active(r.Context())
	if err != nil {
		h.logger.Error("GET /rentals/active - Failed to list active rentals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rentals)
}
