package checkout

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/service/orders/models"
)

type OrderService interface {
	Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
