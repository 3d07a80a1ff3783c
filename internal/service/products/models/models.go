package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// ProductRequest запрос на создание или обновление товара
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Description string  `json:"description" validate:"max=2000"`
	Price       float64 `json:"price" validate:"gte=0"`
	Category    string  `json:"category" validate:"required,max=100"`
	Stock       int     `json:"stock" validate:"gte=0"`
	ImageURL    *string `json:"image_url,omitempty" validate:"omitempty,max=2048"`
}

// ToDomain конвертирует запрос в domain модель
func (r *ProductRequest) ToDomain() *domain.Product {
	return &domain.Product{
		Name:        r.Name,
		Description: r.Description,
		Price:       decimal.NewFromFloat(r.Price).Round(2),
		Category:    r.Category,
		Stock:       r.Stock,
		ImageURL:    r.ImageURL,
	}
}

// ProductResponse ответ с данными товара
type ProductResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	ImageURL    *string   `json:"image_url"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(p *domain.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Stock:       p.Stock,
		CreatedAt:   p.CreatedAt,
	}
}
