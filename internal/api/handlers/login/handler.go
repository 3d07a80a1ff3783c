package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/service/auth"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidCredentials = "usuário ou senha inválidos"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var creds auth.Credentials
	if err := handlers.DecodeJSON(r, &creds); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(creds); err != nil {
		h.logger.Warn("POST /auth/login - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	resp, err := h.service.Login(r.Context(), &creds)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidInput):
			h.logger.Warn("POST /auth/login - Rejected login for %q", creds.Username)
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			h.logger.Error("POST /auth/login - Failed to login: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - Operator logged in: %s", resp.Username)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
