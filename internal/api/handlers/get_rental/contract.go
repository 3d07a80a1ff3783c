package get_rental

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
)

type RentalsService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.LiveRentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
