package checkout

import (
	"context"
	"errors"
	"testing"

	"tidybook/models"
	"tidybook/services/catalog"
	"tidybook/services/quote"

	"go.uber.org/zap"
)

// fakeQuoteService serves one canned session.
type fakeQuoteService struct {
	session   *models.QuoteSession
	completed bool
}

func (f *fakeQuoteService) InitiateQuote(ctx context.Context, deviceID string) (*models.QuoteSession, error) {
	return f.session, nil
}

func (f *fakeQuoteService) GetQuote(ctx context.Context, sessionID string) (*models.QuoteSession, error) {
	if f.session == nil || f.session.SessionID != sessionID {
		return nil, quote.ErrSessionNotFound
	}
	return f.session, nil
}

func (f *fakeQuoteService) UpdateQuote(ctx context.Context, sessionID string, update quote.QuoteUpdate) (*models.QuoteSession, error) {
	return f.session, nil
}

func (f *fakeQuoteService) SaveRoomConfiguration(ctx context.Context, sessionID, roomType string, input models.RoomConfigurationInput) (*models.QuoteSession, error) {
	return f.session, nil
}

func (f *fakeQuoteService) CompleteQuote(ctx context.Context, sessionID string) (*models.QuoteResult, error) {
	if f.session == nil || f.session.SessionID != sessionID {
		return nil, quote.ErrSessionNotFound
	}
	f.completed = true
	return &models.QuoteResult{
		Rooms:               f.session.Context.Rooms,
		ServiceType:         f.session.Context.ServiceType,
		CleanlinessLevel:    f.session.Context.CleanlinessLevel,
		Frequency:           f.session.Context.Frequency,
		PaymentFrequency:    f.session.Context.PaymentFrequency,
		AllowVideoRecording: f.session.Context.AllowVideoRecording,
		Breakdown:           f.session.Breakdown,
	}, nil
}

func (f *fakeQuoteService) CancelQuote(ctx context.Context, sessionID string) error {
	return nil
}

// fakeTermsService reports a fixed acceptance state.
type fakeTermsService struct {
	accepted bool
}

func (f *fakeTermsService) GetSections() []models.TermsSection { return nil }

func (f *fakeTermsService) Accept(ctx context.Context, deviceID string) error { return nil }

func (f *fakeTermsService) Status(ctx context.Context, deviceID string) (models.TermsStatus, error) {
	return models.TermsStatus{DeviceID: deviceID, Accepted: f.accepted}, nil
}

// fakePaymentProcessor records the intent it was asked to create.
type fakePaymentProcessor struct {
	calls       int
	amountCents int64
	currency    string
}

func (f *fakePaymentProcessor) CreatePaymentIntent(ctx context.Context, amountCents int64, currency, description string, metadata map[string]string) (string, string, error) {
	f.calls++
	f.amountCents = amountCents
	f.currency = currency
	return "pi_test", "secret_test", nil
}

// memOrderRepo stores orders in memory.
type memOrderRepo struct {
	orders map[string]models.Order
	nextID int
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{orders: make(map[string]models.Order)}
}

func (r *memOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	r.nextID++
	id := "order-" + string(rune('0'+r.nextID))
	order.ID = id
	r.orders[id] = order
	return id, nil
}

func (r *memOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, ok := r.orders[id]
	if !ok {
		return nil, errors.New("order not found")
	}
	return &order, nil
}

func (r *memOrderRepo) GetByDeviceID(ctx context.Context, deviceID string) ([]models.Order, error) {
	var out []models.Order
	for _, order := range r.orders {
		if order.DeviceID == deviceID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (r *memOrderRepo) UpdateStatus(ctx context.Context, id string, status string) error {
	order, ok := r.orders[id]
	if !ok {
		return errors.New("order not found")
	}
	order.Status = status
	r.orders[id] = order
	return nil
}

func (r *memOrderRepo) DeleteByID(ctx context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func availableSession() *models.QuoteSession {
	return &models.QuoteSession{
		SessionID: "sess-1",
		DeviceID:  "device-1",
		Context: models.PricingContext{
			Rooms:            models.RoomSelection{"bedroom": 1},
			ServiceType:      models.ServiceTypeStandard,
			CleanlinessLevel: 1,
			Frequency:        models.FrequencyOneTime,
			PaymentFrequency: models.PaymentPerService,
		},
		Breakdown: models.PriceBreakdown{
			BasePrice:          45,
			TotalPrice:         60,
			IsServiceAvailable: true,
		},
	}
}

func cardCheckout() models.CheckoutData {
	return models.CheckoutData{
		Contact: models.Contact{FirstName: "Pat", LastName: "Doe", Email: "pat@example.com"},
		Address: models.Address{Line1: "1 Main St", City: "Springfield", State: "IL", PostalCode: "12345"},
		Payment: models.PaymentInfo{Method: models.PaymentMethodCard},
	}
}

func newTestCheckoutService(session *models.QuoteSession, termsAccepted bool) (*DefaultCheckoutService, *fakeQuoteService, *fakePaymentProcessor, *memOrderRepo) {
	quoteSvc := &fakeQuoteService{session: session}
	payments := &fakePaymentProcessor{}
	orders := newMemOrderRepo()
	svc := &DefaultCheckoutService{
		QuoteSvc: quoteSvc,
		TermsSvc: &fakeTermsService{accepted: termsAccepted},
		Catalog:  catalog.NewStaticCatalog(),
		Payments: payments,
		Orders:   orders,
		Logger:   zap.NewNop(),
	}
	return svc, quoteSvc, payments, orders
}

func TestConfirm_TermsGate(t *testing.T) {
	svc, quoteSvc, payments, orders := newTestCheckoutService(availableSession(), false)

	_, err := svc.Confirm(context.Background(), "sess-1", cardCheckout())
	var qerr *quote.QuoteError
	if !errors.As(err, &qerr) || qerr.Code != "termsNotAccepted" {
		t.Fatalf("expected termsNotAccepted, got %v", err)
	}
	if quoteSvc.completed {
		t.Fatalf("quote must not be finalized when terms are unaccepted")
	}
	if payments.calls != 0 || len(orders.orders) != 0 {
		t.Fatalf("no payment or order should exist when terms are unaccepted")
	}
}

func TestConfirm_CardOrder(t *testing.T) {
	svc, _, payments, orders := newTestCheckoutService(availableSession(), true)

	order, err := svc.Confirm(context.Background(), "sess-1", cardCheckout())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if order.Status != models.OrderStatusConfirmed {
		t.Fatalf("expected confirmed order, got %q", order.Status)
	}
	if payments.calls != 1 {
		t.Fatalf("expected one payment intent, got %d", payments.calls)
	}
	if payments.amountCents != 6000 {
		t.Fatalf("expected 6000 cents, got %d", payments.amountCents)
	}
	if payments.currency != "usd" {
		t.Fatalf("expected usd, got %q", payments.currency)
	}
	if order.Checkout.Payment.PaymentIntentID != "pi_test" {
		t.Fatalf("expected intent id on the order, got %q", order.Checkout.Payment.PaymentIntentID)
	}
	if order.Checkout.Payment.Status != "requires_confirmation" {
		t.Fatalf("expected requires_confirmation, got %q", order.Checkout.Payment.Status)
	}
	if len(orders.orders) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(orders.orders))
	}
}

func TestConfirm_InPersonOrderSkipsPayment(t *testing.T) {
	svc, _, payments, _ := newTestCheckoutService(availableSession(), true)

	data := cardCheckout()
	data.Payment.Method = models.PaymentMethodInPerson

	order, err := svc.Confirm(context.Background(), "sess-1", data)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if order.Status != models.OrderStatusConfirmed {
		t.Fatalf("expected confirmed order, got %q", order.Status)
	}
	if payments.calls != 0 {
		t.Fatalf("in-person orders must not create payment intents")
	}
	if order.Checkout.Payment.Status != "pending" {
		t.Fatalf("expected pending payment, got %q", order.Checkout.Payment.Status)
	}
}

func TestConfirm_UnavailableNeedsQuote(t *testing.T) {
	session := availableSession()
	session.Breakdown.IsServiceAvailable = false
	svc, _, payments, _ := newTestCheckoutService(session, true)

	order, err := svc.Confirm(context.Background(), "sess-1", cardCheckout())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if order.Status != models.OrderStatusNeedsQuote {
		t.Fatalf("expected needs_quote order, got %q", order.Status)
	}
	if payments.calls != 0 {
		t.Fatalf("manual-quote orders must not be charged")
	}
}

func TestConfirm_EmailPricedRoomNeedsQuote(t *testing.T) {
	session := availableSession()
	session.Context.Rooms = models.RoomSelection{"bedroom": 1, "other": 1}
	svc, _, payments, _ := newTestCheckoutService(session, true)

	order, err := svc.Confirm(context.Background(), "sess-1", cardCheckout())
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if order.Status != models.OrderStatusNeedsQuote {
		t.Fatalf("expected needs_quote order, got %q", order.Status)
	}
	if payments.calls != 0 {
		t.Fatalf("manual-quote orders must not be charged")
	}
}

func TestConfirm_EmptySelection(t *testing.T) {
	session := availableSession()
	session.Context.Rooms = models.RoomSelection{}
	svc, _, _, orders := newTestCheckoutService(session, true)

	_, err := svc.Confirm(context.Background(), "sess-1", cardCheckout())
	var qerr *quote.QuoteError
	if !errors.As(err, &qerr) || qerr.Code != "emptySelection" {
		t.Fatalf("expected emptySelection, got %v", err)
	}
	if len(orders.orders) != 0 {
		t.Fatalf("no order should be persisted for an empty selection")
	}
}

func TestConfirm_AnonymousSessionRequiresInlineAcceptance(t *testing.T) {
	session := availableSession()
	session.DeviceID = ""
	svc, quoteSvc, _, orders := newTestCheckoutService(session, false)

	// Without the inline acceptance flag the anonymous checkout is refused;
	// there is no stored record to fall back on.
	_, err := svc.Confirm(context.Background(), "sess-1", cardCheckout())
	var qerr *quote.QuoteError
	if !errors.As(err, &qerr) || qerr.Code != "termsNotAccepted" {
		t.Fatalf("expected termsNotAccepted for anonymous checkout, got %v", err)
	}
	if quoteSvc.completed || len(orders.orders) != 0 {
		t.Fatalf("nothing should be finalized for a refused anonymous checkout")
	}

	data := cardCheckout()
	data.AcceptedTerms = true
	order, err := svc.Confirm(context.Background(), "sess-1", data)
	if err != nil {
		t.Fatalf("Confirm failed: %v", err)
	}
	if order.Status != models.OrderStatusConfirmed {
		t.Fatalf("expected confirmed order, got %q", order.Status)
	}
}

func TestConfirm_UnknownSession(t *testing.T) {
	svc, _, _, _ := newTestCheckoutService(availableSession(), true)

	_, err := svc.Confirm(context.Background(), "no-such-session", cardCheckout())
	if !errors.Is(err, quote.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}
