package stripe

import "errors"

var (
	// ErrNoAPIKey возвращается, если ключ Stripe не настроен
	ErrNoAPIKey = errors.New("stripe client: api key is not configured")

	// ErrSessionNotFound возвращается, если сессия оплаты не найдена
	ErrSessionNotFound = errors.New("stripe client: checkout session not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("stripe client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от Stripe
	ErrInvalidResponse = errors.New("stripe client: invalid response")

	// ErrNoWebhookSecret возвращается, если секрет webhook не настроен
	ErrNoWebhookSecret = errors.New("stripe webhook: secret is not configured")

	// ErrInvalidSignature возвращается, если подпись webhook не сходится
	ErrInvalidSignature = errors.New("stripe webhook: invalid signature")
)
