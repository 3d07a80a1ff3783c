package conditions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/infra/cache"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/openweather"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

type stubWeather struct {
	calls int
	w     *domain.Weather
	err   error
}

func (s *stubWeather) Current(context.Context) (*domain.Weather, error) {
	s.calls++
	return s.w, s.err
}

type stubTides struct {
	calls int
	t     *domain.Tides
	err   error
}

func (s *stubTides) Today(context.Context) (*domain.Tides, error) {
	s.calls++
	return s.t, s.err
}

type stubNews struct {
	calls int
	limit int
	items []domain.NewsItem
	err   error
}

func (s *stubNews) Latest(_ context.Context, limit int) ([]domain.NewsItem, error) {
	s.calls++
	s.limit = limit
	return s.items, s.err
}

func TestEstimateWaves(t *testing.T) {
	tests := []struct {
		hour       int
		height     float64
		max        float64
		swell      int
		wantRating string
	}{
		{hour: 0, height: 1.2, max: 1.7, swell: 10, wantRating: "Bom"},
		{hour: 6, height: 1.5, max: 2.0, swell: 11, wantRating: "Bom"},
		{hour: 12, height: 1.2, max: 1.7, swell: 12, wantRating: "Bom"},
		{hour: 18, height: 0.9, max: 1.4, swell: 11, wantRating: "Pequeno"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("hour %d", tt.hour), func(t *testing.T) {
			w := EstimateWaves(tt.hour)
			assert.Equal(t, tt.height, w.WaveHeight)
			assert.Equal(t, tt.max, w.WaveHeightMax)
			assert.Equal(t, tt.swell, w.SwellPeriod)
			assert.Equal(t, tt.wantRating, w.SurfRating)
			assert.Equal(t, "ESE", w.WaveDirection)
			assert.Equal(t, SourceEstimated, w.Source)
		})
	}
}

func TestService_Waves_UsesShopTimezone(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	svc := NewService(&stubWeather{}, &stubTides{}, &stubNews{}, cache.Nop{}, Options{Location: loc}, logger.NewNop())
	svc.now = func() time.Time { return time.Date(2025, 1, 10, 21, 0, 0, 0, time.UTC) }

	// 21:00 UTC = 18:00 на пляже
	assert.Equal(t, 0.9, svc.Waves().WaveHeight)
}

func TestService_Weather_Fallbacks(t *testing.T) {
	noKey := &stubWeather{err: openweather.ErrNoAPIKey}
	svc := NewService(noKey, &stubTides{}, &stubNews{}, cache.Nop{}, Options{}, logger.NewNop())

	w := svc.Weather(context.Background())
	assert.Equal(t, SourceEstimated, w.Source)
	assert.Empty(t, w.Error)
	assert.Equal(t, 26.0, w.Temp)

	broken := &stubWeather{err: errors.New("timeout")}
	svc = NewService(broken, &stubTides{}, &stubNews{}, cache.Nop{}, Options{}, logger.NewNop())

	w = svc.Weather(context.Background())
	assert.Equal(t, SourceEstimated, w.Source)
	assert.Equal(t, "timeout", w.Error)
}

func TestService_CachesUpstreamResults(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	weather := &stubWeather{w: &domain.Weather{Temp: 29.5, Source: openweather.SourceName}}
	tides := &stubTides{t: &domain.Tides{Location: "João Pessoa", Tides: []domain.Tide{{Type: "alta", Time: "05:10", Height: "2.4m"}}}}
	news := &stubNews{items: []domain.NewsItem{{Title: "Swell chegando", Link: "https://news.test/1"}}}

	svc := NewService(weather, tides, news, cache.NewRedis(client, time.Minute), Options{NewsLimit: 3}, logger.NewNop())
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		assert.Equal(t, 29.5, svc.Weather(ctx).Temp)
		assert.Equal(t, "João Pessoa", svc.Tides(ctx).Location)
		items, err := svc.News(ctx)
		require.NoError(t, err)
		require.Len(t, items, 1)
	}

	assert.Equal(t, 1, weather.calls)
	assert.Equal(t, 1, tides.calls)
	assert.Equal(t, 1, news.calls)
	assert.Equal(t, 3, news.limit)

	mr.FastForward(2 * time.Minute)
	svc.Weather(ctx)
	assert.Equal(t, 2, weather.calls)
}

func TestService_Tides_Fallback(t *testing.T) {
	svc := NewService(&stubWeather{}, &stubTides{err: errors.New("502")}, &stubNews{}, cache.Nop{}, Options{TideLocation: "Tabatinga, PB"}, logger.NewNop())

	tides := svc.Tides(context.Background())

	assert.Equal(t, "Tabatinga, PB", tides.Location)
	require.Len(t, tides.Tides, 3)
	assert.Equal(t, domain.Tide{Type: "baixa", Time: "12:45", Height: "0.5m"}, tides.Tides[1])
	assert.Equal(t, SourceEstimated, tides.Source)
}

func TestService_News_Error(t *testing.T) {
	svc := NewService(&stubWeather{}, &stubTides{}, &stubNews{err: errors.New("dns")}, cache.Nop{}, Options{}, logger.NewNop())

	_, err := svc.News(context.Background())

	assert.ErrorIs(t, err, ErrNewsUnavailable)
}
