package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents an item of the shop catalog
type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       decimal.Decimal
	ImageURL    *string
	Category    string
	Stock       int
	CreatedAt   time.Time
}

// InStock returns true if the requested quantity can be sold
func (p *Product) InStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}
