package conditions

import (
	"context"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// WeatherProvider источник текущей погоды
type WeatherProvider interface {
	Current(ctx context.Context) (*domain.Weather, error)
}

// TideProvider источник таблицы приливов
type TideProvider interface {
	Today(ctx context.Context) (*domain.Tides, error)
}

// NewsProvider источник новостей сёрфинга
type NewsProvider interface {
	Latest(ctx context.Context, limit int) ([]domain.NewsItem, error)
}

// Cache кэш ответов внешних источников
type Cache interface {
	Get(ctx context.Context, name string, dest interface{}) (bool, error)
	Set(ctx context.Context, name string, value interface{}) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
