package order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("order.repository: failed to scan row")

	// ErrEncodeItems возвращается, если позиции заказа не удалось (де)сериализовать
	ErrEncodeItems = errors.New("order.repository: failed to encode items")
)
