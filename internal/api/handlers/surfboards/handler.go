package surfboards

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	service "github.com/m04kA/SMC-SurfShopService/internal/service/surfboards"
	"github.com/m04kA/SMC-SurfShopService/internal/service/surfboards/models"
)

const (
	msgInvalidSurfboardID = "ID de prancha inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "prancha não encontrada"
	msgInUse              = "prancha está alugada"
)

// Handler каталог досок: GET публичный, изменения только для оператора
type Handler struct {
	service SurfboardService
	logger  Logger
}

func NewHandler(service SurfboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/surfboards
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	boards, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /surfboards - Failed to list surfboards: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, boards)
}

// Create POST /api/v1/surfboards
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /surfboards")
	if !ok {
		return
	}

	board, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST /surfboards", err)
		return
	}

	h.logger.Info("POST /surfboards - Surfboard created: id=%s", board.ID)
	handlers.RespondJSON(w, http.StatusCreated, board)
}

// Update PUT /api/v1/surfboards/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /surfboards/{id} - Invalid surfboard ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSurfboardID)
		return
	}

	req, ok := h.decode(w, r, "PUT /surfboards/{id}")
	if !ok {
		return
	}

	board, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "PUT /surfboards/{id}", err)
		return
	}

	h.logger.Info("PUT /surfboards/{id} - Surfboard updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, board)
}

// Delete DELETE /api/v1/surfboards/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /surfboards/{id} - Invalid surfboard ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSurfboardID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /surfboards/{id}", err)
		return
	}

	h.logger.Info("DELETE /surfboards/{id} - Surfboard deleted: id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (*models.SurfboardRequest, bool) {
	var req models.SurfboardRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return nil, false
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("%s - Validation failed: %v", route, err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return nil, false
	}
	return &req, true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, err.Error())
	case errors.Is(err, service.ErrSurfboardNotFound):
		h.logger.Warn("%s - Surfboard not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, service.ErrSurfboardInUse):
		h.logger.Warn("%s - Surfboard is rented", route)
		handlers.RespondConflict(w, msgInUse)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
