package surfboards

import "errors"

var (
	// ErrSurfboardNotFound возвращается, когда доска не найдена
	ErrSurfboardNotFound = errors.New("surfboard not found")

	// ErrSurfboardInUse возвращается при попытке удалить доску, которая сейчас в аренде
	ErrSurfboardInUse = errors.New("surfboard is rented")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
