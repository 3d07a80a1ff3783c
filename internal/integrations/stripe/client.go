package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
)

var hundred = decimal.NewFromInt(100)

// Client клиент Stripe Checkout поверх stripe-go
type Client struct {
	apiKey string
	api    *client.API
}

// NewClient создает новый экземпляр клиента Stripe. Пустой baseURL означает api.stripe.com.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	cfg := &stripego.BackendConfig{
		HTTPClient: &http.Client{Timeout: timeout},
	}
	if baseURL = strings.TrimRight(baseURL, "/"); baseURL != "" {
		cfg.URL = stripego.String(baseURL)
	}

	backends := &stripego.Backends{
		API:     stripego.GetBackendWithConfig(stripego.APIBackend, cfg),
		Connect: stripego.GetBackend(stripego.ConnectBackend),
		Uploads: stripego.GetBackend(stripego.UploadsBackend),
	}

	return &Client{
		apiKey: apiKey,
		api:    client.New(apiKey, backends),
	}
}

// CreateCheckoutSession создает сессию оплаты для позиций корзины
func (c *Client) CreateCheckoutSession(ctx context.Context, in CheckoutRequest) (*Session, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := &stripego.CheckoutSessionParams{
		Mode:       stripego.String(string(stripego.CheckoutSessionModePayment)),
		SuccessURL: stripego.String(in.SuccessURL),
		CancelURL:  stripego.String(in.CancelURL),
	}
	for _, item := range in.Items {
		params.LineItems = append(params.LineItems, &stripego.CheckoutSessionLineItemParams{
			Quantity: stripego.Int64(int64(item.Quantity)),
			PriceData: &stripego.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripego.String(in.Currency),
				UnitAmount: stripego.Int64(MinorUnits(item.UnitPrice)),
				ProductData: &stripego.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripego.String(item.Name),
				},
			},
		})
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}
	params.Context = ctx

	s, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return nil, mapError(err)
	}
	return sessionFromAPI(s), nil
}

// GetCheckoutSession получает актуальное состояние сессии оплаты
func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string) (*Session, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	params := &stripego.CheckoutSessionParams{}
	params.Context = ctx

	s, err := c.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return nil, mapError(err)
	}
	return sessionFromAPI(s), nil
}

func mapError(err error) error {
	var apiErr *stripego.Error
	if errors.As(err, &apiErr) {
		if apiErr.HTTPStatusCode == http.StatusNotFound {
			return ErrSessionNotFound
		}
		return fmt.Errorf("%w: status %d: %s", ErrInvalidResponse, apiErr.HTTPStatusCode, apiErr.Msg)
	}
	return fmt.Errorf("%w: %v", ErrInternal, err)
}

func sessionFromAPI(s *stripego.CheckoutSession) *Session {
	return &Session{
		ID:            s.ID,
		URL:           s.URL,
		Status:        string(s.Status),
		PaymentStatus: string(s.PaymentStatus),
		AmountTotal:   s.AmountTotal,
		Currency:      string(s.Currency),
		Metadata:      s.Metadata,
	}
}

// MinorUnits переводит сумму в центы (сентаво), как требует Stripe
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}
