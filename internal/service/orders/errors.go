package orders

import "errors"

var (
	// ErrInvalidInput возвращается при некорректной корзине
	ErrInvalidInput = errors.New("orders: invalid input data")

	// ErrProductNotFound возвращается, если товара из корзины нет в каталоге
	ErrProductNotFound = errors.New("orders: product not found")

	// ErrInsufficientStock возвращается, если товара не хватает на складе
	ErrInsufficientStock = errors.New("orders: insufficient stock")

	// ErrSessionNotFound возвращается, если сессия оплаты неизвестна шлюзу
	ErrSessionNotFound = errors.New("orders: payment session not found")

	// ErrPaymentsDisabled возвращается, если платёжный шлюз не настроен
	ErrPaymentsDisabled = errors.New("orders: payments are disabled")

	// ErrInvalidSignature возвращается при неверной подписи webhook
	ErrInvalidSignature = errors.New("orders: invalid webhook signature")

	// ErrGateway возвращается при ошибке платёжного шлюза
	ErrGateway = errors.New("orders: payment gateway error")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("orders: internal error")
)
