package get_payment_status

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/service/orders/models"
)

type OrderService interface {
	Status(ctx context.Context, sessionID string) (*models.StatusResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
