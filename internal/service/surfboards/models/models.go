package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// SurfboardRequest запрос на создание или обновление доски
type SurfboardRequest struct {
	Name       string  `json:"name" validate:"required,max=100"`
	HourlyRate float64 `json:"hourly_rate" validate:"gte=0"`
	ImageURL   *string `json:"image_url,omitempty" validate:"omitempty,max=2048"`
}

// ToDomain конвертирует запрос в domain модель
func (r *SurfboardRequest) ToDomain() *domain.Surfboard {
	return &domain.Surfboard{
		Name:       r.Name,
		ImageURL:   r.ImageURL,
		HourlyRate: decimal.NewFromFloat(r.HourlyRate).Round(2),
	}
}

// SurfboardResponse ответ с данными доски
type SurfboardResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	ImageURL   *string   `json:"image_url"`
	HourlyRate float64   `json:"hourly_rate"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(b *domain.Surfboard) *SurfboardResponse {
	if b == nil {
		return nil
	}
	return &SurfboardResponse{
		ID:         b.ID.String(),
		Name:       b.Name,
		ImageURL:   b.ImageURL,
		HourlyRate: b.HourlyRate.InexactFloat64(),
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
	}
}

// FromDomainList конвертирует список досок
func FromDomainList(boards []*domain.Surfboard) []SurfboardResponse {
	result := make([]SurfboardResponse, 0, len(boards))
	for _, b := range boards {
		result = append(result, *FromDomain(b))
	}
	return result
}
