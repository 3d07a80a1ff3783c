package surfboard

import "errors"

var (
	// ErrSurfboardNotFound возвращается, когда доска не найдена
	ErrSurfboardNotFound = errors.New("surfboard.repository: surfboard not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("surfboard.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("surfboard.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("surfboard.repository: failed to scan row")
)
