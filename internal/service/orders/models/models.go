package models

import (
	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// Способы оплаты
const (
	PaymentMethodCard = "stripe"
	PaymentMethodPix  = "pix"
)

// CheckoutItem позиция корзины
type CheckoutItem struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"min=1,max=100"`
}

// CheckoutRequest корзина покупателя. Цена берётся из каталога, а не из запроса.
type CheckoutRequest struct {
	Items     []CheckoutItem `json:"items" validate:"required,min=1,max=50,dive"`
	OriginURL string         `json:"origin_url,omitempty" validate:"omitempty,url"`
}

// OrderItemResponse позиция оформленного заказа
type OrderItemResponse struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// CheckoutResponse результат оформления заказа
type CheckoutResponse struct {
	OrderID       string              `json:"order_id"`
	SessionID     string              `json:"session_id,omitempty"`
	URL           string              `json:"url,omitempty"`
	Total         float64             `json:"total"`
	Currency      string              `json:"currency"`
	PaymentMethod string              `json:"payment_method"`
	Message       string              `json:"message,omitempty"`
	WhatsAppURL   string              `json:"whatsapp_url,omitempty"`
	Items         []OrderItemResponse `json:"items"`
}

// StatusResponse состояние оплаты по сессии
type StatusResponse struct {
	SessionID     string  `json:"session_id"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	AmountTotal   float64 `json:"amount_total"`
	Currency      string  `json:"currency"`
	OrderID       string  `json:"order_id,omitempty"`
	OrderStatus   string  `json:"order_status,omitempty"`
}

// ItemsFromDomain конвертирует позиции заказа в DTO
func ItemsFromDomain(items []domain.OrderItem) []OrderItemResponse {
	result := make([]OrderItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, OrderItemResponse{
			ProductID: item.ProductID.String(),
			Name:      item.Name,
			UnitPrice: item.UnitPrice.InexactFloat64(),
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal().InexactFloat64(),
		})
	}
	return result
}
