package get_payment_status

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/service/orders"
)

const (
	msgInvalidSessionID = "ID de sessão inválido"
	msgSessionNotFound  = "sessão de pagamento não encontrada"
	msgPaymentsDisabled = "pagamento com cartão indisponível"
	msgGateway          = "falha ao consultar pagamento"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/payments/status/{sessionId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(mux.Vars(r)["sessionId"])
	if sessionID == "" || len(sessionID) > 255 {
		handlers.RespondBadRequest(w, msgInvalidSessionID)
		return
	}

	status, err := h.service.Status(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrSessionNotFound):
			h.logger.Warn("GET /payments/status/{sessionId} - Session not found: %s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)
		case errors.Is(err, orders.ErrPaymentsDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentsDisabled)
		case errors.Is(err, orders.ErrGateway):
			h.logger.Error("GET /payments/status/{sessionId} - Payment gateway failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGateway)
		default:
			h.logger.Error("GET /payments/status/{sessionId} - Failed to get status: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, status)
}
