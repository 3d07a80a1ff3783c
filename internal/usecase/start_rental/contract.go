package start_rental

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error)
	CountInProgress(ctx context.Context) (int, error)
}

// SurfboardRepository интерфейс репозитория досок
type SurfboardRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Surfboard, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.SurfboardStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики аренд
type Metrics interface {
	RentalStarted()
	SetActiveRentals(n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
