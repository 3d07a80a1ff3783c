package orders

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/stripe"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) (*domain.Order, error)
	GetBySessionID(ctx context.Context, sessionID string) (*domain.Order, error)
	SetSession(ctx context.Context, id uuid.UUID, sessionID string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
}

// ProductRepository интерфейс репозитория товаров
type ProductRepository interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Product, error)
	DecrementStock(ctx context.Context, id uuid.UUID, quantity int) error
}

// PaymentGateway интерфейс платёжного шлюза (Stripe Checkout)
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, in stripe.CheckoutRequest) (*stripe.Session, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (*stripe.Session, error)
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
