package products

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/service/products/models"
)

type ProductService interface {
	List(ctx context.Context, category *string) ([]models.ProductResponse, error)
	Create(ctx context.Context, req *models.ProductRequest) (*models.ProductResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.ProductRequest) (*models.ProductResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
