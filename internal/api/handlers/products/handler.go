package products

import (
	"errors"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-SurfShopService/internal/api/handlers"
	service "github.com/m04kA/SMC-SurfShopService/internal/service/products"
	"github.com/m04kA/SMC-SurfShopService/internal/service/products/models"
)

const (
	msgInvalidProductID   = "ID de produto inválido"
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgNotFound           = "produto não encontrado"
)

type Handler struct {
	service ProductService
	logger  Logger
}

func NewHandler(service ProductService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/products?category=...
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	var category *string
	if c := strings.TrimSpace(r.URL.Query().Get("category")); c != "" {
		category = &c
	}

	products, err := h.service.List(r.Context(), category)
	if err != nil {
		h.logger.Error("GET /products - Failed to list products: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, products)
}

// Create POST /api/v1/products
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decode(w, r, "POST /products")
	if !ok {
		return
	}

	product, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.respondError(w, "POST /products", err)
		return
	}

	h.logger.Info("POST /products - Product created: id=%s", product.ID)
	handlers.RespondJSON(w, http.StatusCreated, product)
}

// Update PUT /api/v1/products/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PUT /products/{id} - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	req, ok := h.decode(w, r, "PUT /products/{id}")
	if !ok {
		return
	}

	product, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.respondError(w, "PUT /products/{id}", err)
		return
	}

	h.logger.Info("PUT /products/{id} - Product updated: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, product)
}

// Delete DELETE /api/v1/products/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("DELETE /products/{id} - Invalid product ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProductID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /products/{id}", err)
		return
	}

	h.logger.Info("DELETE /products/{id} - Product deleted: id=%s", id)
	handlers.RespondNoContent(w)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (*models.ProductRequest, bool) {
	var req models.ProductRequest
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
	case errors.Is(err, service.ErrProductNotFound):
		h.logger.Warn("%s - Product not found", route)
		handlers.RespondNotFound(w, msgNotFound)
	default:
		h.logger.Error("%s - Internal error: %v", route, err)
		handlers.RespondInternalError(w)
	}
}
