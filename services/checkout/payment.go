package checkout

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// PaymentProcessor creates payment intents for card checkouts. Stripe in
// production, faked in tests.
type PaymentProcessor interface {
	CreatePaymentIntent(ctx context.Context, amountCents int64, currency, description string, metadata map[string]string) (id string, clientSecret string, err error)
}

// StripePaymentProcessor implements PaymentProcessor against the Stripe API.
// stripe.Key is set once at startup.
type StripePaymentProcessor struct {
	Logger *zap.Logger
}

func (p *StripePaymentProcessor) CreatePaymentIntent(ctx context.Context, amountCents int64, currency, description string, metadata map[string]string) (string, string, error) {
	if amountCents <= 0 {
		return "", "", fmt.Errorf("payment amount must be positive, got %d", amountCents)
	}

	params := &stripe.PaymentIntentParams{
		Amount:      stripe.Int64(amountCents),
		Currency:    stripe.String(currency),
		Description: stripe.String(description),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		return "", "", fmt.Errorf("failed to create payment intent: %w", err)
	}

	p.Logger.Info("payment intent created",
		zap.String("paymentIntentId", pi.ID), zap.Int64("amountCents", amountCents))
	return pi.ID, pi.ClientSecret, nil
}
