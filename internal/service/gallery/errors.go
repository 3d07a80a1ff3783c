package gallery

import "errors"

var (
	// ErrImageNotFound возвращается, когда изображение не найдено
	ErrImageNotFound = errors.New("gallery image not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
