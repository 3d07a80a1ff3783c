package get_rental_history

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/service/rentals/models"
)

type RentalsService interface {
	History(ctx context.Context, date string, limit int) ([]models.RentalResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
