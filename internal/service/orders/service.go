package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/infra/storage/order"
	productRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/product"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/stripe"
	"github.com/m04kA/SMC-SurfShopService/internal/receipt"
	"github.com/m04kA/SMC-SurfShopService/internal/service/orders/models"
)

const metadataOrderID = "order_id"

// Options параметры оформления заказа
type Options struct {
	ShopName      string
	Currency      string
	PublicURL     string // используется, если покупатель не передал origin_url
	SuccessURL    string
	CancelURL     string
	WebhookSecret string
}

// Service оформление заказов магазина и приём оплаты
type Service struct {
	orderRepo   OrderRepository
	productRepo ProductRepository
	gateway     PaymentGateway // nil, если оплата картой не настроена
	txManager   TransactionManager
	opts        Options
	logger      Logger
}

// NewService создает новый экземпляр сервиса заказов. gateway может быть nil.
func NewService(orderRepo OrderRepository, productRepo ProductRepository, gateway PaymentGateway, txManager TransactionManager, opts Options, logger Logger) *Service {
	if opts.Currency == "" {
		opts.Currency = domain.DefaultCurrency
	}
	return &Service{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		gateway:     gateway,
		txManager:   txManager,
		opts:        opts,
		logger:      logger,
	}
}

// Checkout проверяет корзину по каталогу, сохраняет заказ и открывает сессию оплаты.
// Без платёжного шлюза заказ оформляется на оплату через PIX.
func (s *Service) Checkout(ctx context.Context, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	s.logger.Info("Checkout: %d item(s)", len(req.Items))

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	o := &domain.Order{
		Items:    items,
		Currency: s.opts.Currency,
		Status:   domain.OrderPending,
	}
	o.Total = o.CalculateTotal()

	created, err := s.orderRepo.Create(ctx, o)
	if err != nil {
		s.logger.Error("Checkout: repository error: %v", err)
		return nil, fmt.Errorf("%w: Checkout - repository error: %v", ErrInternal, err)
	}

	resp := &models.CheckoutResponse{
		OrderID:  created.ID.String(),
		Total:    created.Total.InexactFloat64(),
		Currency: created.Currency,
		Items:    models.ItemsFromDomain(created.Items),
	}

	if s.gateway == nil {
		resp.PaymentMethod = models.PaymentMethodPix
		resp.Message = s.pixMessage(created)
		resp.WhatsAppURL = receipt.WhatsAppURL(resp.Message, nil)
		s.logger.Info("Checkout: order id=%s created for PIX payment, total=%s", created.ID, created.Total.StringFixed(2))
		return resp, nil
	}

	successURL, cancelURL := s.redirectURLs(req.OriginURL)
	session, err := s.gateway.CreateCheckoutSession(ctx, stripe.CheckoutRequest{
		Currency:   created.Currency,
		SuccessURL: successURL,
		CancelURL:  cancelURL,
		Items:      lineItems(created.Items),
		Metadata:   map[string]string{metadataOrderID: created.ID.String()},
	})
	if err != nil {
		s.logger.Error("Checkout: failed to create payment session for order id=%s: %v", created.ID, err)
		if cancelErr := s.orderRepo.UpdateStatus(ctx, created.ID, domain.OrderCancelled); cancelErr != nil {
			s.logger.Warn("Checkout: failed to cancel order id=%s: %v", created.ID, cancelErr)
		}
		return nil, fmt.Errorf("%w: Checkout - %v", ErrGateway, err)
	}

	if err := s.orderRepo.SetSession(ctx, created.ID, session.ID); err != nil {
		s.logger.Error("Checkout: failed to attach session to order id=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: Checkout - repository error: %v", ErrInternal, err)
	}

	resp.PaymentMethod = models.PaymentMethodCard
	resp.SessionID = session.ID
	resp.URL = session.URL

	s.logger.Info("Checkout: order id=%s session=%s total=%s", created.ID, session.ID, created.Total.StringFixed(2))
	return resp, nil
}

// Status запрашивает состояние сессии у шлюза и синхронизирует заказ
func (s *Service) Status(ctx context.Context, sessionID string) (*models.StatusResponse, error) {
	if s.gateway == nil {
		return nil, ErrPaymentsDisabled
	}

	session, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stripe.ErrSessionNotFound) {
			s.logger.Warn("Status: session %s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Status: gateway error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Status - %v", ErrGateway, err)
	}

	resp := &models.StatusResponse{
		SessionID:     session.ID,
		Status:        session.Status,
		PaymentStatus: session.PaymentStatus,
		AmountTotal:   decimal.New(session.AmountTotal, -2).InexactFloat64(),
		Currency:      session.Currency,
	}

	o, err := s.syncOrder(ctx, session)
	switch {
	case err == nil:
		resp.OrderID = o.ID.String()
		resp.OrderStatus = string(o.Status)
	case errors.Is(err, order.ErrOrderNotFound):
		s.logger.Warn("Status: no order for session %s", sessionID)
	default:
		s.logger.Error("Status: failed to sync order for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: Status - %v", ErrInternal, err)
	}

	return resp, nil
}

// Webhook обрабатывает событие шлюза: оплаченная сессия закрывает заказ, истёкшая отменяет.
// Состояние сессии перечитывается у шлюза, тело события используется только для её идентификатора.
func (s *Service) Webhook(ctx context.Context, payload []byte, signature string) error {
	if s.gateway == nil {
		s.logger.Warn("Webhook: payments are disabled, event ignored")
		return ErrPaymentsDisabled
	}

	event, err := stripe.ParseEvent(payload, signature, s.opts.WebhookSecret)
	if err != nil {
		switch {
		case errors.Is(err, stripe.ErrNoWebhookSecret):
			s.logger.Error("Webhook: webhook secret is not configured, event rejected")
			return ErrInvalidSignature
		case errors.Is(err, stripe.ErrInvalidSignature):
			s.logger.Warn("Webhook: rejected event: %v", err)
			return ErrInvalidSignature
		}
		s.logger.Warn("Webhook: malformed event: %v", err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	switch event.Type {
	case stripe.EventCheckoutCompleted, stripe.EventCheckoutExpired:
	default:
		s.logger.Info("Webhook: ignoring event %s type=%s", event.ID, event.Type)
		return nil
	}

	sessionID := event.Data.Object.ID
	if sessionID == "" {
		s.logger.Warn("Webhook: event %s has no session id", event.ID)
		return fmt.Errorf("%w: event without session id", ErrInvalidInput)
	}

	session, err := s.gateway.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, stripe.ErrSessionNotFound) {
			s.logger.Warn("Webhook: session %s from event %s is unknown to the gateway", sessionID, event.ID)
			return nil
		}
		s.logger.Error("Webhook: gateway error for session %s: %v", sessionID, err)
		return fmt.Errorf("%w: Webhook - %v", ErrGateway, err)
	}

	if _, err := s.syncOrder(ctx, session); err != nil {
		if errors.Is(err, order.ErrOrderNotFound) {
			s.logger.Warn("Webhook: no order for session %s", session.ID)
			return nil
		}
		s.logger.Error("Webhook: failed to sync order for session %s: %v", session.ID, err)
		return fmt.Errorf("%w: Webhook - %v", ErrInternal, err)
	}

	s.logger.Info("Webhook: processed event %s type=%s session=%s payment_status=%s", event.ID, event.Type, session.ID, session.PaymentStatus)
	return nil
}

// syncOrder переводит заказ в состояние сессии. Оплаченный заказ списывает остатки один раз.
func (s *Service) syncOrder(ctx context.Context, session *stripe.Session) (*domain.Order, error) {
	var result *domain.Order
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		o, err := s.orderRepo.GetBySessionID(txCtx, session.ID)
		if err != nil {
			return err
		}
		result = o

		if o.Status != domain.OrderPending {
			return nil
		}

		switch {
		case session.Paid():
			for _, item := range o.Items {
				err := s.productRepo.DecrementStock(txCtx, item.ProductID, item.Quantity)
				if errors.Is(err, productRepo.ErrInsufficientStock) || errors.Is(err, productRepo.ErrProductNotFound) {
					// оплата уже прошла, заказ всё равно считается оплаченным
					s.logger.Warn("syncOrder: cannot decrement stock of product id=%s by %d for order id=%s: %v",
						item.ProductID, item.Quantity, o.ID, err)
					continue
				}
				if err != nil {
					return err
				}
			}
			o.Status = domain.OrderPaid
		case session.Status == stripe.SessionStatusExpired:
			o.Status = domain.OrderCancelled
		default:
			return nil
		}

		return s.orderRepo.UpdateStatus(txCtx, o.ID, o.Status)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// resolveItems сверяет корзину с каталогом и подставляет актуальные цены
func (s *Service) resolveItems(ctx context.Context, cart []models.CheckoutItem) ([]domain.OrderItem, error) {
	if len(cart) == 0 {
		return nil, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	if len(cart) > domain.MaxOrderItems {
		return nil, fmt.Errorf("%w: at most %d items per order", ErrInvalidInput, domain.MaxOrderItems)
	}

	quantities := make(map[uuid.UUID]int, len(cart))
	ids := make([]uuid.UUID, 0, len(cart))
	for _, item := range cart {
		id, err := uuid.Parse(item.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid product_id %q", ErrInvalidInput, item.ProductID)
		}
		if item.Quantity < 1 || item.Quantity > domain.MaxItemQuantity {
			return nil, fmt.Errorf("%w: quantity must be between 1 and %d", ErrInvalidInput, domain.MaxItemQuantity)
		}
		if _, seen := quantities[id]; !seen {
			ids = append(ids, id)
		}
		quantities[id] += item.Quantity
	}

	products, err := s.productRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error("Checkout: repository error: %v", err)
		return nil, fmt.Errorf("%w: Checkout - repository error: %v", ErrInternal, err)
	}

	items := make([]domain.OrderItem, 0, len(ids))
	for _, id := range ids {
		p, ok := products[id]
		if !ok {
			s.logger.Warn("Checkout: product id=%s not found", id)
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}
		qty := quantities[id]
		if !p.InStock(qty) {
			s.logger.Warn("Checkout: product id=%s has %d in stock, requested %d", id, p.Stock, qty)
			return nil, fmt.Errorf("%w: %s", ErrInsufficientStock, p.Name)
		}
		items = append(items, domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  qty,
		})
	}
	return items, nil
}

func (s *Service) redirectURLs(origin string) (string, string) {
	base := strings.TrimRight(origin, "/")
	if base == "" {
		base = strings.TrimRight(s.opts.PublicURL, "/")
	}

	success := s.opts.SuccessURL
	if origin != "" || success == "" {
		success = base + "/success?session_id={CHECKOUT_SESSION_ID}"
	}
	cancel := s.opts.CancelURL
	if origin != "" || cancel == "" {
		cancel = base + "/carrinho"
	}
	return success, cancel
}

func (s *Service) pixMessage(o *domain.Order) string {
	lines := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		lines = append(lines, fmt.Sprintf("%s (%dx) - R$ %s", item.Name, item.Quantity, item.Subtotal().StringFixed(2)))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*Pedido - %s*\n\n", s.opts.ShopName)
	b.WriteString(strings.Join(lines, "\n"))
	fmt.Fprintf(&b, "\n\nTotal: R$ %s\n\nPague via PIX escaneando o QR Code!", o.Total.StringFixed(2))
	return b.String()
}

func lineItems(items []domain.OrderItem) []stripe.LineItem {
	result := make([]stripe.LineItem, 0, len(items))
	for _, item := range items {
		result = append(result, stripe.LineItem{
			Name:      item.Name,
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
		})
	}
	return result
}
