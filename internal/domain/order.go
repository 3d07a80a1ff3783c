package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus represents the payment state of an order
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem one cart line, price is taken from the catalog at checkout
type OrderItem struct {
	ProductID uuid.UUID       `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal returns unit price times quantity
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order represents a checked out cart
type Order struct {
	ID               uuid.UUID
	Items            []OrderItem
	Total            decimal.Decimal
	Currency         string
	Status           OrderStatus
	PaymentSessionID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CalculateTotal sums all item subtotals
func (o *Order) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}
