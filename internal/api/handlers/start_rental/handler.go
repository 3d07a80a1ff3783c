package start_rental

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/api/middleware"
	startRental "github.com/m04kA/SMC-SurfShopService/internal/usecase/start_rental"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgSurfboardNotFound  = "prancha não encontrada"
	msgNotAvailable       = "prancha não está disponível"
)

type Handler struct {
	useCase StartRentalUseCase
	logger  Logger
}

func NewHandler(useCase StartRentalUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/rentals/start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartRentalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rentals/start - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /rentals/start - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /rentals/start - Invalid surfboard_id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, startRental.ErrInvalidInput):
			h.logger.Warn("POST /rentals/start - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, startRental.ErrSurfboardNotFound):
			h.logger.Warn("POST /rentals/start - Surfboard not found: surfboard_id=%s", req.SurfboardID)
			handlers.RespondNotFound(w, msgSurfboardNotFound)

		case errors.Is(err, startRental.ErrSurfboardNotAvailable):
			h.logger.Warn("POST /rentals/start - Surfboard not available: surfboard_id=%s", req.SurfboardID)
			handlers.RespondConflict(w, msgNotAvailable)

		default:
			h.logger.Error("POST /rentals/start - Failed to start rental: surfboard_id=%s, error=%v", req.SurfboardID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rentals/start - Rental started: rental_id=%s, surfboard_id=%s, operator=%s",
		result.ID, result.SurfboardID, middleware.GetOperatorName(r.Context()))
	handlers.RespondJSON(w, http.StatusCreated, result)
}
