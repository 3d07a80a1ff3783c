package subscription

import "errors"

var (
	// ErrAlreadyExists возвращается, если endpoint уже подписан
	ErrAlreadyExists = errors.New("subscription.repository: subscription already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("subscription.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("subscription.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("subscription.repository: failed to scan row")
)
