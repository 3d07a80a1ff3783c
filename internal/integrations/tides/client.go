package tides

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
)

// Client клиент удалённой таблицы приливов
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient создает новый экземпляр клиента таблицы приливов
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Today получает таблицу приливов на сегодня
func (c *Client) Today(ctx context.Context) (*domain.Tides, error) {
	if c.url == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var tides domain.Tides
	if err := json.NewDecoder(resp.Body).Decode(&tides); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	if len(tides.Tides) == 0 {
		return nil, fmt.Errorf("%w: empty tide table", ErrInvalidResponse)
	}

	return &tides, nil
}
