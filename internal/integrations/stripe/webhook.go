package stripe

import (
	"encoding/json"
	"errors"
	"fmt"

	stripego "github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/webhook"
)

// ParseEvent проверяет заголовок Stripe-Signature и разбирает событие.
// Без секрета события не принимаются.
func ParseEvent(payload []byte, header, secret string) (*Event, error) {
	if secret == "" {
		return nil, ErrNoWebhookSecret
	}

	raw, err := webhook.ConstructEventWithOptions(payload, header, secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		if isSignatureError(err) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
		}
		return nil, fmt.Errorf("%w: failed to decode event: %v", ErrInvalidResponse, err)
	}

	event := &Event{ID: raw.ID, Type: string(raw.Type)}
	if raw.Data != nil && len(raw.Data.Raw) > 0 {
		var s stripego.CheckoutSession
		if err := json.Unmarshal(raw.Data.Raw, &s); err != nil {
			return nil, fmt.Errorf("%w: failed to decode event object: %v", ErrInvalidResponse, err)
		}
		event.Data.Object = *sessionFromAPI(&s)
	}
	return event, nil
}

func isSignatureError(err error) bool {
	return errors.Is(err, webhook.ErrNotSigned) ||
		errors.Is(err, webhook.ErrInvalidHeader) ||
		errors.Is(err, webhook.ErrNoValidSignature) ||
		errors.Is(err, webhook.ErrTooOld)
}
