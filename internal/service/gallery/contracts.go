package gallery

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// GalleryRepository интерфейс репозитория галереи
type GalleryRepository interface {
	Create(ctx context.Context, img *domain.GalleryImage) (*domain.GalleryImage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.GalleryImage, error)
	List(ctx context.Context) ([]*domain.GalleryImage, error)
	Update(ctx context.Context, img *domain.GalleryImage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
