package watcher

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/backend"
	"github.com/m04kA/SMC-SurfShopService/internal/notify"
)

// Backend REST API магазина
type Backend interface {
	ActiveRentals(ctx context.Context) ([]*domain.Rental, error)
	CheckAlerts(ctx context.Context) ([]backend.Alert, error)
}

type Notifier interface {
	Notify(ctx context.Context, n notify.Notification) error
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
