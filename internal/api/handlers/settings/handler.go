package settings

import (
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	service "github.com/m04kA/SMC-SurfShopService/internal/service/settings"
)

const msgInvalidRequestBody = "corpo da requisição inválido"

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/settings
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /settings - Failed to load settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, settings)
}

// Update PUT /api/v1/settings
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req service.UpdateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("PUT /settings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	settings, err := h.service.Update(r.Context(), &req)
	if err != nil {
		h.logger.Error("PUT /settings - Failed to update settings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /settings - Settings updated")
	handlers.RespondJSON(w, http.StatusOK, settings)
}
