package backend

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("backend client: internal error")

	// ErrUnauthorized возвращается, если токен оператора отклонён
	ErrUnauthorized = errors.New("backend client: unauthorized")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("backend client: invalid response")
)
