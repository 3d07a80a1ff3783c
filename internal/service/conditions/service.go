// Package conditions serves beach conditions for the shop dashboard: weather, an hourly
// wave estimate, the tide table and surf news. Weather and tides never fail: when the
// upstream source is missing or down a fixed local estimate is returned instead.
package conditions

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/openweather"
)

// SourceEstimated источник данных для локальной оценки
const SourceEstimated = "estimado"

// Ключи кэша
const (
	cacheKeyWeather = "weather"
	cacheKeyTides   = "tides"
	cacheKeyNews    = "news"
)

// ErrNewsUnavailable возвращается, если ленту новостей не удалось получить
var ErrNewsUnavailable = errors.New("conditions: news unavailable")

// Options параметры сервиса условий
type Options struct {
	Location     *time.Location // часовой пояс пляжа для оценки волн
	TideLocation string
	NewsLimit    int
}

// Service сервис погодных условий на пляже
type Service struct {
	weather WeatherProvider
	tides   TideProvider
	news    NewsProvider
	cache   Cache
	opts    Options
	now     func() time.Time
	logger  Logger
}

// NewService создает новый экземпляр сервиса условий
func NewService(weather WeatherProvider, tides TideProvider, news NewsProvider, cache Cache, opts Options, logger Logger) *Service {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.NewsLimit <= 0 {
		opts.NewsLimit = 5
	}
	return &Service{
		weather: weather,
		tides:   tides,
		news:    news,
		cache:   cache,
		opts:    opts,
		now:     time.Now,
		logger:  logger,
	}
}

// Weather текущая погода. Оценка по умолчанию не кэшируется.
func (s *Service) Weather(ctx context.Context) *domain.Weather {
	var cached domain.Weather
	if s.fromCache(ctx, cacheKeyWeather, &cached) {
		return &cached
	}

	w, err := s.weather.Current(ctx)
	if err != nil {
		fallback := FallbackWeather()
		if !errors.Is(err, openweather.ErrNoAPIKey) {
			s.logger.Warn("Weather: upstream failed, using estimate: %v", err)
			fallback.Error = err.Error()
		}
		return fallback
	}

	s.toCache(ctx, cacheKeyWeather, w)
	return w
}

// Waves оценка волн по часу дня на пляже
func (s *Service) Waves() *domain.Waves {
	return EstimateWaves(s.now().In(s.opts.Location).Hour())
}

// Tides таблица приливов на сегодня
func (s *Service) Tides(ctx context.Context) *domain.Tides {
	var cached domain.Tides
	if s.fromCache(ctx, cacheKeyTides, &cached) {
		return &cached
	}

	t, err := s.tides.Today(ctx)
	if err != nil {
		s.logger.Warn("Tides: upstream failed, using estimate: %v", err)
		return FallbackTides(s.opts.TideLocation)
	}

	s.toCache(ctx, cacheKeyTides, t)
	return t
}

// News последние новости сёрфинга
func (s *Service) News(ctx context.Context) ([]domain.NewsItem, error) {
	var cached []domain.NewsItem
	if s.fromCache(ctx, cacheKeyNews, &cached) {
		return cached, nil
	}

	items, err := s.news.Latest(ctx, s.opts.NewsLimit)
	if err != nil {
		s.logger.Error("News: failed to fetch feed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrNewsUnavailable, err)
	}

	s.toCache(ctx, cacheKeyNews, items)
	return items, nil
}

func (s *Service) fromCache(ctx context.Context, key string, dest interface{}) bool {
	found, err := s.cache.Get(ctx, key, dest)
	if err != nil {
		s.logger.Warn("cache: failed to read %s: %v", key, err)
		return false
	}
	return found
}

func (s *Service) toCache(ctx context.Context, key string, value interface{}) {
	if err := s.cache.Set(ctx, key, value); err != nil {
		s.logger.Warn("cache: failed to write %s: %v", key, err)
	}
}

// EstimateWaves оценка волн для типичных условий пляжа в заданный час
func EstimateWaves(hour int) *domain.Waves {
	h := float64(hour)
	height := round1(1.2 + 0.3*math.Sin(h*math.Pi/12))

	rating := "Pequeno"
	if height >= 1.0 {
		rating = "Bom"
	}

	return &domain.Waves{
		WaveHeight:           height,
		WaveHeightMax:        round1(height + 0.5),
		WaveDirection:        "ESE",
		WaveDirectionDegrees: 112,
		SwellPeriod:          10 + int(2*math.Sin(h*math.Pi/24)),
		SwellDirection:       "E",
		WaterTemp:            27,
		WindWaveHeight:       0.4,
		SurfRating:           rating,
		BestTime:             "06:00 - 09:00",
		TideInfluence:        "Melhor na maré enchendo",
		ConditionsSummary:    "Ondas consistentes com vento terral pela manhã",
		Source:               SourceEstimated,
	}
}

// FallbackWeather погода по умолчанию для пляжа
func FallbackWeather() *domain.Weather {
	return &domain.Weather{
		Temp:          26,
		FeelsLike:     28,
		TempMin:       25,
		TempMax:       30,
		Description:   "Sol com muitas nuvens",
		Humidity:      78,
		WindSpeed:     11,
		WindDirection: "ESE",
		Pressure:      1012,
		RainChance:    35,
		RainMM:        1.5,
		UVIndex:       8,
		Sunrise:       "05:18",
		Sunset:        "17:45",
		Source:        SourceEstimated,
	}
}

// FallbackTides типичная таблица приливов
func FallbackTides(location string) *domain.Tides {
	if location == "" {
		location = "Tabatinga, PB"
	}
	return &domain.Tides{
		Location: location,
		Tides: []domain.Tide{
			{Type: "alta", Time: "06:30", Height: "2.3m"},
			{Type: "baixa", Time: "12:45", Height: "0.5m"},
			{Type: "alta", Time: "18:50", Height: "2.1m"},
		},
		Source: SourceEstimated,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
