package models

import (
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// ImageRequest запрос на добавление или изменение изображения
type ImageRequest struct {
	ImageURL string  `json:"image_url" validate:"required,max=2048"`
	Title    *string `json:"title,omitempty" validate:"omitempty,max=200"`
	Order    int     `json:"order"`
}

// ImageResponse ответ с данными изображения
type ImageResponse struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"image_url"`
	Title     *string   `json:"title"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

// FromDomain конвертирует domain модель в DTO
func FromDomain(img *domain.GalleryImage) *ImageResponse {
	if img == nil {
		return nil
	}
	return &ImageResponse{
		ID:        img.ID.String(),
		ImageURL:  img.ImageURL,
		Title:     img.Title,
		Order:     img.Order,
		CreatedAt: img.CreatedAt,
	}
}
