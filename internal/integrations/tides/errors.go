package tides

import "errors"

var (
	// ErrNotConfigured возвращается, если URL таблицы приливов не задан
	ErrNotConfigured = errors.New("tides client: url is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("tides client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("tides client: invalid response")
)
