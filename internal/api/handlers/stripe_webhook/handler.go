package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/service/orders"
)

const (
	maxPayloadSize = 64 << 10

	signatureHeader = "Stripe-Signature"

	msgInvalidPayload   = "payload inválido"
	msgInvalidSignature = "assinatura inválida"
	msgPaymentsDisabled = "pagamento com cartão indisponível"
	msgGateway          = "falha ao consultar pagamento"
)

// ReceivedResponse подтверждение получения события
type ReceivedResponse struct {
	Received bool `json:"received"`
}

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

// Handle POST /api/v1/webhook/stripe
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// подпись считается по сырому телу, поэтому без DecodeJSON
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadSize))
	if err != nil || len(payload) == 0 {
		h.logger.Warn("POST /webhook/stripe - Failed to read payload: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	if err := h.service.Webhook(r.Context(), payload, r.Header.Get(signatureHeader)); err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidSignature):
			h.logger.Warn("POST /webhook/stripe - Invalid signature: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSignature)
		case errors.Is(err, orders.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPayload)
		case errors.Is(err, orders.ErrPaymentsDisabled):
			handlers.RespondError(w, http.StatusServiceUnavailable, msgPaymentsDisabled)
		case errors.Is(err, orders.ErrGateway):
			// шлюз повторит доставку события
			h.logger.Error("POST /webhook/stripe - Gateway error: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGateway)
		default:
			h.logger.Error("POST /webhook/stripe - Failed to handle event: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReceivedResponse{Received: true})
}
