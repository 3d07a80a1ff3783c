package check_alerts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// RentalRepository интерфейс репозитория аренд
type RentalRepository interface {
	ListAlertCandidates(ctx context.Context) ([]*domain.Rental, error)
	MarkNotified(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики оповещений
type Metrics interface {
	RentalAlert(kind string)
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
