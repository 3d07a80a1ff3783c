package product

import "errors"

var (
	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("product.repository: product not found")

	// ErrInsufficientStock возвращается, когда на складе меньше товара, чем списывается
	ErrInsufficientStock = errors.New("product.repository: insufficient stock")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("product.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("product.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("product.repository: failed to scan row")
)
