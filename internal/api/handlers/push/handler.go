package push

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	service "github.com/m04kA/SMC-SurfShopService/internal/service/push"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgAlreadySubscribed  = "Already subscribed"
)

type Handler struct {
	service PushService
	logger  Logger
}

func NewHandler(service PushService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Subscribe POST /api/v1/push/subscribe
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var req service.SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /push/subscribe - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /push/subscribe - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}

	created, err := h.service.Subscribe(r.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /push/subscribe - Failed to subscribe: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if !created {
		handlers.RespondJSON(w, http.StatusOK, SubscribeResponse{Success: true, Message: msgAlreadySubscribed})
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, SubscribeResponse{Success: true})
}

// List GET /api/v1/push/subscriptions
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /push/subscriptions - Failed to list subscriptions: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, subs)
}
