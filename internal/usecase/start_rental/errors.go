package start_rental

import "errors"

var (
	// ErrSurfboardNotFound возвращается, когда доска не найдена
	ErrSurfboardNotFound = errors.New("start_rental: surfboard not found")

	// ErrSurfboardNotAvailable возвращается, когда доска уже в аренде
	ErrSurfboardNotAvailable = errors.New("start_rental: surfboard is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("start_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("start_rental: internal error")
)
