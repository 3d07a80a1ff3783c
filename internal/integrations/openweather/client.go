package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

const (
	// SourceName значение поля source для данных из OpenWeather
	SourceName = "openweathermap"

	defaultPressure = 1013
	defaultUVIndex  = 8
	defaultSunrise  = "05:18"
	defaultSunset   = "17:45"
)

var compassPoints = [16]string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// Client клиент OpenWeather current weather API
type Client struct {
	baseURL    string
	apiKey     string
	lat, lon   float64
	lang       string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента OpenWeather
func NewClient(baseURL, apiKey string, lat, lon float64, lang string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		lang:    lang,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Current получает текущую погоду по координатам пляжа
func (c *Client) Current(ctx context.Context) (*domain.Weather, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(c.lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(c.lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	params.Set("lang", c.lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var data CurrentResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return toDomain(&data), nil
}

// CompassDirection переводит градусы в одно из 16 направлений розы ветров
func CompassDirection(deg float64) string {
	idx := int((deg+11.25)/22.5) % len(compassPoints)
	if idx < 0 {
		idx += len(compassPoints)
	}
	return compassPoints[idx]
}

func toDomain(data *CurrentResponse) *domain.Weather {
	w := &domain.Weather{
		Temp:          data.Main.Temp,
		FeelsLike:     data.Main.FeelsLike,
		TempMin:       data.Main.Temp,
		TempMax:       data.Main.Temp,
		Humidity:      data.Main.Humidity,
		WindSpeed:     int(math.Round(data.Wind.Speed * 3.6)),
		WindDirection: CompassDirection(data.Wind.Deg),
		Pressure:      defaultPressure,
		RainMM:        data.Rain.OneHour,
		UVIndex:       defaultUVIndex,
		Sunrise:       defaultSunrise,
		Sunset:        defaultSunset,
		Source:        SourceName,
	}

	if data.Main.TempMin != nil {
		w.TempMin = *data.Main.TempMin
	}
	if data.Main.TempMax != nil {
		w.TempMax = *data.Main.TempMax
	}
	if data.Main.Pressure != nil {
		w.Pressure = *data.Main.Pressure
	}
	if len(data.Weather) > 0 {
		w.Description = data.Weather[0].Description
	}

	return w
}
