package orders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v79/webhook"

	"github.com/m04kA/SMC-SurfShopService/internal/domain"
	"github.com/m04kA/SMC-SurfShopService/internal/infra/storage/order"
	productRepo "github.com/m04kA/SMC-SurfShopService/internal/infra/storage/product"
	"github.com/m04kA/SMC-SurfShopService/internal/integrations/stripe"
	"github.com/m04kA/SMC-SurfShopService/internal/service/orders/models"
	"github.com/m04kA/SMC-SurfShopService/pkg/logger"
)

type fakeOrders struct {
	byID map[uuid.UUID]*domain.Order
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{byID: map[uuid.UUID]*domain.Order{}}
}

func (f *fakeOrders) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	o.ID = uuid.New()
	f.byID[o.ID] = o
	return o, nil
}

func (f *fakeOrders) GetBySessionID(_ context.Context, sessionID string) (*domain.Order, error) {
	for _, o := range f.byID {
		if o.PaymentSessionID != nil && *o.PaymentSessionID == sessionID {
			return o, nil
		}
	}
	return nil, order.ErrOrderNotFound
}

func (f *fakeOrders) SetSession(_ context.Context, id uuid.UUID, sessionID string) error {
	f.byID[id].PaymentSessionID = &sessionID
	return nil
}

func (f *fakeOrders) UpdateStatus(_ context.Context, id uuid.UUID, status domain.OrderStatus) error {
	f.byID[id].Status = status
	return nil
}

type fakeProducts struct {
	byID map[uuid.UUID]*domain.Product
}

func (f *fakeProducts) GetByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Product, error) {
	result := map[uuid.UUID]*domain.Product{}
	for _, id := range ids {
		if p, ok := f.byID[id]; ok {
			result[id] = p
		}
	}
	return result, nil
}

func (f *fakeProducts) DecrementStock(_ context.Context, id uuid.UUID, quantity int) error {
	p, ok := f.byID[id]
	if !ok {
		return productRepo.ErrProductNotFound
	}
	if p.Stock < quantity {
		return productRepo.ErrInsufficientStock
	}
	p.Stock -= quantity
	return nil
}

type fakeGateway struct {
	created  []stripe.CheckoutRequest
	sessions map[string]*stripe.Session
	err      error
}

func (g *fakeGateway) CreateCheckoutSession(_ context.Context, in stripe.CheckoutRequest) (*stripe.Session, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.created = append(g.created, in)
	s := &stripe.Session{ID: "cs_test_1", URL: "https://checkout.stripe.test/cs_test_1", Status: stripe.SessionStatusOpen, PaymentStatus: stripe.PaymentStatusUnpaid}
	g.sessions[s.ID] = s
	return s, nil
}

func (g *fakeGateway) GetCheckoutSession(_ context.Context, id string) (*stripe.Session, error) {
	s, ok := g.sessions[id]
	if !ok {
		return nil, stripe.ErrSessionNotFound
	}
	return s, nil
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

type fixture struct {
	svc      *Service
	orders   *fakeOrders
	products *fakeProducts
	gateway  *fakeGateway
	wax      *domain.Product
	leash    *domain.Product
}

func newFixture(withGateway bool) *fixture {
	wax := &domain.Product{ID: uuid.New(), Name: "Parafina", Price: decimal.RequireFromString("15.50"), Stock: 10}
	leash := &domain.Product{ID: uuid.New(), Name: "Leash 6'", Price: decimal.RequireFromString("89.90"), Stock: 1}

	f := &fixture{
		orders:   newFakeOrders(),
		products: &fakeProducts{byID: map[uuid.UUID]*domain.Product{wax.ID: wax, leash.ID: leash}},
		wax:      wax,
		leash:    leash,
	}

	var gateway PaymentGateway
	if withGateway {
		f.gateway = &fakeGateway{sessions: map[string]*stripe.Session{}}
		gateway = f.gateway
	}

	opts := Options{ShopName: "tabatinga2surf", PublicURL: "http://shop.test/", WebhookSecret: "whsec_test"}
	f.svc = NewService(f.orders, f.products, gateway, inlineTx{}, opts, logger.NewNop())
	return f
}

func TestService_Checkout_Stripe(t *testing.T) {
	f := newFixture(true)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.wax.ID.String(), Quantity: 2},
		{ProductID: f.leash.ID.String(), Quantity: 1},
	}})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodCard, resp.PaymentMethod)
	assert.Equal(t, "cs_test_1", resp.SessionID)
	assert.Equal(t, 120.9, resp.Total)
	assert.Equal(t, domain.DefaultCurrency, resp.Currency)

	require.Len(t, f.gateway.created, 1)
	req := f.gateway.created[0]
	assert.Equal(t, "http://shop.test/success?session_id={CHECKOUT_SESSION_ID}", req.SuccessURL)
	assert.Equal(t, "http://shop.test/carrinho", req.CancelURL)
	assert.Equal(t, resp.OrderID, req.Metadata["order_id"])

	stored := f.orders.byID[uuid.MustParse(resp.OrderID)]
	assert.Equal(t, domain.OrderPending, stored.Status)
	require.NotNil(t, stored.PaymentSessionID)
	assert.Equal(t, "cs_test_1", *stored.PaymentSessionID)
}

func TestService_Checkout_PixFallback(t *testing.T) {
	f := newFixture(false)

	resp, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.wax.ID.String(), Quantity: 1},
	}})

	require.NoError(t, err)
	assert.Equal(t, models.PaymentMethodPix, resp.PaymentMethod)
	assert.Empty(t, resp.URL)
	assert.Contains(t, resp.Message, "*Pedido - tabatinga2surf*")
	assert.Contains(t, resp.Message, "Parafina (1x) - R$ 15.50")
	assert.Contains(t, resp.Message, "Total: R$ 15.50")
	assert.Contains(t, resp.WhatsAppURL, "https://wa.me/")
}

func TestService_Checkout_Rejections(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	_, err := f.svc.Checkout(ctx, &models.CheckoutRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{{ProductID: "nope", Quantity: 1}}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{{ProductID: uuid.NewString(), Quantity: 1}}})
	assert.ErrorIs(t, err, ErrProductNotFound)

	// две строки одного товара суммируются
	_, err = f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.leash.ID.String(), Quantity: 1},
		{ProductID: f.leash.ID.String(), Quantity: 1},
	}})
	assert.ErrorIs(t, err, ErrInsufficientStock)

	assert.Empty(t, f.orders.byID)
}

func TestService_Checkout_GatewayFailureCancelsOrder(t *testing.T) {
	f := newFixture(true)
	f.gateway.err = errors.New("stripe down")

	_, err := f.svc.Checkout(context.Background(), &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.wax.ID.String(), Quantity: 1},
	}})

	assert.ErrorIs(t, err, ErrGateway)
	require.Len(t, f.orders.byID, 1)
	for _, o := range f.orders.byID {
		assert.Equal(t, domain.OrderCancelled, o.Status)
	}
}

func TestService_Status_MarksPaidOnce(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	resp, err := f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.wax.ID.String(), Quantity: 3},
	}})
	require.NoError(t, err)

	session := f.gateway.sessions[resp.SessionID]
	session.Status = stripe.SessionStatusComplete
	session.PaymentStatus = stripe.PaymentStatusPaid
	session.AmountTotal = 4650
	session.Currency = "brl"

	status, err := f.svc.Status(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "paid", status.PaymentStatus)
	assert.Equal(t, 46.5, status.AmountTotal)
	assert.Equal(t, resp.OrderID, status.OrderID)
	assert.Equal(t, string(domain.OrderPaid), status.OrderStatus)
	assert.Equal(t, 7, f.wax.Stock)

	_, err = f.svc.Status(ctx, resp.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 7, f.wax.Stock)
}

func TestService_Status_Errors(t *testing.T) {
	_, err := newFixture(false).svc.Status(context.Background(), "cs_x")
	assert.ErrorIs(t, err, ErrPaymentsDisabled)

	_, err = newFixture(true).svc.Status(context.Background(), "cs_missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func signed(payload []byte, secret string) string {
	return webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   payload,
		Secret:    secret,
		Timestamp: time.Now(),
	}).Header
}

func TestService_Webhook(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	resp, err := f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.leash.ID.String(), Quantity: 1},
	}})
	require.NoError(t, err)

	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1","object":"checkout.session","status":"complete","payment_status":"paid"}}}`)

	err = f.svc.Webhook(ctx, payload, "t=1,v1=bad")
	assert.ErrorIs(t, err, ErrInvalidSignature)

	f.gateway.sessions["cs_test_1"] = &stripe.Session{ID: "cs_test_1", Status: stripe.SessionStatusComplete, PaymentStatus: stripe.PaymentStatusPaid}
	err = f.svc.Webhook(ctx, payload, signed(payload, "whsec_test"))
	require.NoError(t, err)

	o := f.orders.byID[uuid.MustParse(resp.OrderID)]
	assert.Equal(t, domain.OrderPaid, o.Status)
	assert.Equal(t, 0, f.leash.Stock)
}

func TestService_Webhook_SessionStateFromGateway(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	resp, err := f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.wax.ID.String(), Quantity: 2},
	}})
	require.NoError(t, err)

	// событие утверждает, что сессия оплачена, а шлюз отвечает unpaid
	payload := []byte(`{"id":"evt_9","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1","object":"checkout.session","status":"complete","payment_status":"paid"}}}`)
	require.NoError(t, f.svc.Webhook(ctx, payload, signed(payload, "whsec_test")))

	assert.Equal(t, domain.OrderPending, f.orders.byID[uuid.MustParse(resp.OrderID)].Status)
	assert.Equal(t, 10, f.wax.Stock)

	unknown := []byte(`{"id":"evt_10","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_victim","object":"checkout.session","payment_status":"paid"}}}`)
	assert.NoError(t, f.svc.Webhook(ctx, unknown, signed(unknown, "whsec_test")))
}

func TestService_Webhook_RequiresSecret(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()
	f.svc.opts.WebhookSecret = ""

	resp, err := f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.wax.ID.String(), Quantity: 1},
	}})
	require.NoError(t, err)
	f.gateway.sessions["cs_test_1"].PaymentStatus = stripe.PaymentStatusPaid

	forged := []byte(`{"id":"evt_x","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1","object":"checkout.session","payment_status":"paid"}}}`)
	assert.ErrorIs(t, f.svc.Webhook(ctx, forged, ""), ErrInvalidSignature)
	assert.ErrorIs(t, f.svc.Webhook(ctx, forged, signed(forged, "")), ErrInvalidSignature)

	assert.Equal(t, domain.OrderPending, f.orders.byID[uuid.MustParse(resp.OrderID)].Status)
	assert.Equal(t, 10, f.wax.Stock)
}

func TestService_Webhook_PaymentsDisabled(t *testing.T) {
	f := newFixture(false)
	payload := []byte(`{"id":"evt_1","object":"event","type":"checkout.session.completed","data":{"object":{"id":"cs_test_1"}}}`)

	err := f.svc.Webhook(context.Background(), payload, signed(payload, "whsec_test"))

	assert.ErrorIs(t, err, ErrPaymentsDisabled)
}

func TestService_Webhook_Expired(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()

	resp, err := f.svc.Checkout(ctx, &models.CheckoutRequest{Items: []models.CheckoutItem{
		{ProductID: f.wax.ID.String(), Quantity: 1},
	}})
	require.NoError(t, err)
	f.gateway.sessions["cs_test_1"].Status = stripe.SessionStatusExpired

	payload := []byte(`{"id":"evt_2","object":"event","type":"checkout.session.expired","data":{"object":{"id":"cs_test_1","object":"checkout.session","status":"expired","payment_status":"unpaid"}}}`)
	require.NoError(t, f.svc.Webhook(ctx, payload, signed(payload, "whsec_test")))

	assert.Equal(t, domain.OrderCancelled, f.orders.byID[uuid.MustParse(resp.OrderID)].Status)
	assert.Equal(t, 10, f.wax.Stock)

	unknown := []byte(`{"id":"evt_3","object":"event","type":"customer.created","data":{"object":{}}}`)
	assert.NoError(t, f.svc.Webhook(ctx, unknown, signed(unknown, "whsec_test")))
}
