package rentals

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// RentalRepository интерфейс чтения аренд
type RentalRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Rental, error)
	ListInProgress(ctx context.Context) ([]*domain.Rental, error)
	ListHistory(ctx context.Context, filter domain.RentalHistoryFilter) ([]*domain.Rental, error)
}

// Metrics счётчики аренд
type Metrics interface {
	SetActiveRentals(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
