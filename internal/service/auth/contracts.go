package auth

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// UserRepository интерфейс репозитория операторов
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// PasswordHasher хеширование паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer выпуск JWT для оператора
type TokenIssuer interface {
	Generate(subject, username string) (string, time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
