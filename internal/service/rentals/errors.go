package rentals

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("rentals: rental not found")

	// ErrInvalidInput возвращается при некорректных параметрах запроса
	ErrInvalidInput = errors.New("rentals: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rentals: internal error")
)
