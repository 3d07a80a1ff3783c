package get_rental_receipt

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals"
)

const (
	msgInvalidRentalID = "ID de locação inválido"
	msgNotFound        = "locação não encontrada"
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

// Handle GET /api/v1/rentals/{id}/receipt?phone=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /rentals/{id}/receipt - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var phone *string
	if p := strings.TrimSpace(r.URL.Query().Get("phone")); p != "" {
		phone = &p
	}

	rc, err := h.service.Receipt(r.Context(), rentalID, phone)
	if err != nil {
		if errors.Is(err, rentals.ErrRentalNotFound) {
			h.logger.Warn("GET /rentals/{id}/receipt - Rental not found: rental_id=%s", rentalID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /rentals/{id}/receipt - Failed to build receipt: rental_id=%s, error=%v", rentalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rc)
}
