package settings

import (
	"context"

	service "github.com/m04kA/SMC-SurfShopService/internal/service/settings"
)

type SettingsService interface {
	Get(ctx context.Context) (*service.Response, error)
	Update(ctx context.Context, req *service.UpdateRequest) (*service.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
