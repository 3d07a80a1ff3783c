package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	"github.com/m04kA/SMC-SurfShopService/internal/service/orders"
	"github.com/m04kA/SMC-SurfShopService/internal/service/orders/models"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgProductNotFound    = "produto não encontrado"
	msgInsufficientStock  = "estoque insuficiente"
	msgGateway            = "falha ao criar sessão de pagamento"
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

// Handle POST /api/v1/payments/checkout
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/checkout - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.Validate(req); err != nil {
		h.logger.Warn("POST /payments/checkout - Validation failed: %v", err)
		handlers.RespondBadRequest(w, handlers.ValidationMessage(err))
		return
	}
	if req.OriginURL == "" {
		req.OriginURL = r.Header.Get("Origin")
	}

	resp, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, orders.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, orders.ErrProductNotFound):
			h.logger.Warn("POST /payments/checkout - Product not found: %v", err)
			handlers.RespondNotFound(w, msgProductNotFound)
		case errors.Is(err, orders.ErrInsufficientStock):
			h.logger.Warn("POST /payments/checkout - Insufficient stock: %v", err)
			handlers.RespondConflict(w, msgInsufficientStock)
		case errors.Is(err, orders.ErrGateway):
			h.logger.Error("POST /payments/checkout - Payment gateway failed: %v", err)
			handlers.RespondError(w, http.StatusBadGateway, msgGateway)
		default:
			h.logger.Error("POST /payments/checkout - Failed to checkout: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /payments/checkout - Order created: order_id=%s, method=%s, total=%.2f", resp.OrderID, resp.PaymentMethod, resp.Total)
	handlers.RespondJSON(w, http.StatusCreated, resp)
}
