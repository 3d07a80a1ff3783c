package rentals_live

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

type RentalsService interface {
	InProgress(ctx context.Context) ([]*domain.Rental, error)
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
