package rental

import "errors"

var (
	// ErrRentalNotFound возвращается, когда аренда не найдена
	ErrRentalNotFound = errors.New("rental.repository: rental not found")

	// ErrBoardAlreadyRented возвращается, когда у доски уже есть незавершённая аренда
	ErrBoardAlreadyRented = errors.New("rental.repository: surfboard already has a rental in progress")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("rental.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("rental.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("rental.repository: failed to scan row")
)
