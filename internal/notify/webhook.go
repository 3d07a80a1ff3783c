package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var (
	// ErrInternal возвращается при ошибках формирования запроса
	ErrInternal = errors.New("notify webhook: internal error")

	// ErrUnexpectedStatus возвращается, когда получатель ответил не 2xx
	ErrUnexpectedStatus = errors.New("notify webhook: unexpected status")
)

type webhookPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Notification
}

// WebhookNotifier отправляет оповещение POST-запросом с JSON телом
type WebhookNotifier struct {
	url        string
	httpClient *http.Client
}

// NewWebhookNotifier создает notifier для указанного URL
func NewWebhookNotifier(url string, timeout time.Duration) *WebhookNotifier {
	return &WebhookNotifier{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (w *WebhookNotifier) Notify(ctx context.Context, n Notification) error {
	body, err := json.Marshal(webhookPayload{Title: n.Title(), Body: n.Body(), Notification: n})
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(data))
	}

	return nil
}
