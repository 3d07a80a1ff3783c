package gallery

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	service "github.com/m04kA/SMC-SurfShopService/internal/service/gallery"
	"github.com/m04kA/SMC-SurfShopService/internal/service/gallery/models"
)

const (
	msgInvalidImageID     = "ID de imagem inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "imagem não encontrada"
)

type Handler struct {
	service GalleryService
	logger  Logger
}

func NewHandler(service GalleryService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/gallery
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	images, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /gallery - Failed to list images: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, images)
}

// Create POST /api/v1/gallery
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /gallery")
	if !ok {
		return
	}

	image, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST /gallery", err)
		return
	}

	h.logger.Info("POST /gallery - Image added: id=%s", image.ID)
	handlers.RespondJSON(w, http.StatusCreated, image)
}

// Update PUT /api/v1/gallery/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /gallery/{id} - Invalid image ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImageID)
		return
	}

	req, ok := h.decode(w, r, "PUT /gallery/{id}")
	if !ok {
		return
	}

	image, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "PUT /gallery/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, image)
}

// Delete DELETE /api/v1/gallery/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /gallery/{id} - Invalid image ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidImageID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /gallery/{id}", err)
		return
	}

	h.logger.Info("DELETE /gallery/{id} - Image deleted: id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (*models.ImageRequest, bool) {
	var req models.ImageRequest
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
		handlers.RespondBadRequest(w, err.Error())
	case errors.Is(err, service.ErrImageNotFound):
		h.logger.Warn("%s - Image not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
