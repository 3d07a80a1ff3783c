package gallery

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/service/gallery/models"
)

type GalleryService interface {
	List(ctx context.Context) ([]models.ImageResponse, error)
	Create(ctx context.Context, req *models.ImageRequest) (*models.ImageResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.ImageRequest) (*models.ImageResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
