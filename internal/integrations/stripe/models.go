package stripe

import (
	"github.com/shopspring/decimal"
)

// Статусы оплаты Checkout Session
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"

	SessionStatusOpen     = "open"
	SessionStatusComplete = "complete"
	SessionStatusExpired  = "expired"

	EventCheckoutCompleted = "checkout.session.completed"
	EventCheckoutExpired   = "checkout.session.expired"
)

// LineItem позиция корзины для Checkout Session
type LineItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// CheckoutRequest параметры создания сессии оплаты
type CheckoutRequest struct {
	Currency   string
	SuccessURL string
	CancelURL  string
	Items      []LineItem
	Metadata   map[string]string
}

// Session Checkout Session (только используемые поля)
type Session struct {
	ID            string
	URL           string
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
	Metadata      map[string]string
}

// Paid true, если оплата прошла
func (s *Session) Paid() bool {
	return s.PaymentStatus == PaymentStatusPaid
}

// Event событие webhook
type Event struct {
	ID   string
	Type string
	Data struct {
		Object Session
	}
}
