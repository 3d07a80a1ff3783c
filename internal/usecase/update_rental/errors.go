package update_rental

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("update_rental: rental not found")

	// ErrRentalCompleted возвращается при попытке изменить завершённую аренду
	ErrRentalCompleted = errors.New("update_rental: rental is already completed")

	// ErrInvalidTransition возвращается, когда действие недопустимо в текущем статусе
	ErrInvalidTransition = errors.New("update_rental: action is not allowed in the current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_rental: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_rental: internal error")
)
