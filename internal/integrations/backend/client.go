package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

const apiPrefix = "/api/v1"

// Client клиент REST API магазина для консольного наблюдателя
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента. token может быть пустым.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// ActiveRentals получает аренды в процессе (active и paused)
func (c *Client) ActiveRentals(ctx context.Context) ([]*domain.Rental, error) {
	var rentals []Rental
	if err := c.get(ctx, "/rentals/active", &rentals); err != nil {
		return nil, err
	}

	result := make([]*domain.Rental, 0, len(rentals))
	for i := range rentals {
		result = append(result, rentals[i].ToDomain())
	}
	return result, nil
}

// CheckAlerts запрашивает новые оповещения. Сервер помечает их отправленными.
func (c *Client) CheckAlerts(ctx context.Context) ([]Alert, error) {
	var alerts []Alert
	if err := c.get(ctx, "/rentals/check-alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

func (c *Client) get(ctx context.Context, path string, dest interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+apiPrefix+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}
