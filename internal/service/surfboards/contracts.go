package surfboards

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// SurfboardRepository интерфейс репозитория досок
type SurfboardRepository interface {
	Create(ctx context.Context, board *domain.Surfboard) (*domain.Surfboard, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Surfboard, error)
	List(ctx context.Context) ([]*domain.Surfboard, error)
	Update(ctx context.Context, board *domain.Surfboard) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
