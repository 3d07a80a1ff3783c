package products

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("product not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
