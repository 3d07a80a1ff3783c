package check_alerts

import (
	"context"

	checkAlerts "github.com/m04kA/SMC-SurfShopService/internal/usecase/check_alerts"
)

type CheckAlertsUseCase interface {
	Execute(ctx context.Context) ([]checkAlerts.Alert, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
