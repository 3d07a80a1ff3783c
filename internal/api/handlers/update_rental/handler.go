package update_rental

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	updateRental "github.com/m04kA/SMC-SurfShopService/internal/usecase/update_rental"
)

const (
	msgInvalidRentalID    = "ID de locação inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "locação não encontrada"
	msgCompleted          = "locação já finalizada"
	msgInvalidTransition  = "ação não permitida no status atual"
)

type Handler struct {
	useCase UpdateRentalUseCase
	logger  Logger
}

func NewHandler(useCase UpdateRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/rentals/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rentalID, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /rentals/{id} - Invalid rental ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRentalID)
		return
	}

	var req UpdateRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /rentals/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PUT /rentals/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(rentalID))
	if err != nil {
		switch {
		case errors.Is(err, updateRental.ErrInvalidInput):
			h.logger.Warn("PUT /rentals/{id} - Invalid input: rental_id=%s, error=%v", rentalID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, updateRental.ErrRentalNotFound):
			h.logger.Warn("PUT /rentals/{id} - Rental not found: rental_id=%s", rentalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateRental.ErrRentalCompleted):
			h.logger.Warn("PUT /rentals/{id} - Rental already completed: rental_id=%s", rentalID)
			handlers.RespondConflict(w, msgCompleted)

		case errors.Is(err, updateRental.ErrInvalidTransition):
			h.logger.Warn("PUT /rentals/{id} - Invalid transition: rental_id=%s, action=%s", rentalID, req.Action)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PUT /rentals/{id} - Failed to update rental: rental_id=%s, error=%v", rentalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /rentals/{id} - Rental updated: rental_id=%s, status=%s", result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
