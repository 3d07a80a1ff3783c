package get_active_rentals

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
)

type RentalsService interface {
	Active(ctx context.Context) ([]models.LiveRentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
