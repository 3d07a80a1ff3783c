package surfboards

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/service/surfboards/models"
)

type SurfboardService interface {
	List(ctx context.Context) ([]models.SurfboardResponse, error)
	Create(ctx context.Context, req *models.SurfboardRequest) (*models.SurfboardResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *models.SurfboardRequest) (*models.SurfboardResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
