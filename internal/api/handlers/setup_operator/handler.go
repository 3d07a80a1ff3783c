package setup_operator

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgUserExists         = "usuário já existe"
	msgSetupClosed        = "configuração inicial já realizada"
)

type Handler struct {
	service AuthService
	logger  Logger
}

func NewHandler(service AuthService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/setup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if err := handlers.DecodeJSON(r, &creds); err != nil {
		h.logger.Warn("POST /auth/setup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(creds); err != nil {
		h.logger.Warn("POST /auth/setup - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	if err := h.service.Setup(r.Context(), &creds); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, auth.ErrUserExists):
			h.logger.Warn("POST /auth/setup - Username taken: %q", creds.Username)
			handlers.RespondConflict(w, msgUserExists)
		case errors.Is(err, auth.ErrSetupClosed):
			h.logger.Warn("POST /auth/setup - Setup already completed")
			handlers.RespondError(w, http.StatusForbidden, msgSetupClosed)
		default:
			h.logger.Error("POST /auth/setup - Failed to create operator: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	username := strings.TrimSpace(creds.Username)
	h.logger.Info("POST /auth/setup - Operator created: %s", username)
	handlers.RespondJSON(w, http.StatusCreated, SetupResponse{Success: true, Username: username})
}
