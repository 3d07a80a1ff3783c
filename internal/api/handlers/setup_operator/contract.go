package setup_operator

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/service/auth"
)

type AuthService interface {
	Setup(ctx context.Context, creds *auth.Credentials) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
