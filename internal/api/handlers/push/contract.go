package push

import (
	"context"

	service "github.com/m04kA/SMC-SurfShopService/internal/service/push"
)

type PushService interface {
	Subscribe(ctx context.Context, req *service.SubscribeRequest) (bool, error)
	List(ctx context.Context) ([]service.SubscriptionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
