package conditions

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

type ConditionsService interface {
	Weather(ctx context.Context) *domain.Weather
	Waves() *domain.Waves
	Tides(ctx context.Context) *domain.Tides
	News(ctx context.Context) ([]domain.NewsItem, error)
}

type Logger interface {
	Warn(format string, v ...interface{})
}
