package checkout

import (
	"context"
	"fmt"
	"math"

	orderRepo "tidybook/database/repository/order"
	"tidybook/models"
	"tidybook/services/catalog"
	"tidybook/services/quote"
	"tidybook/services/terms"

	"go.uber.org/zap"
)

// CheckoutService turns a completed quote session into a persisted order.
type CheckoutService interface {
	Confirm(ctx context.Context, sessionID string, data models.CheckoutData) (*models.Order, error)
}

// DefaultCheckoutService implements CheckoutService.
type DefaultCheckoutService struct {
	QuoteSvc quote.QuoteSessionService
	TermsSvc terms.TermsService
	Catalog  catalog.CatalogProvider
	Payments PaymentProcessor
	Orders   orderRepo.OrderRepository
	Logger   *zap.Logger
}

// Confirm validates the terms gate, finalizes the quote, takes payment for
// card orders, and persists the order. Quotes needing a manual price (either
// an unavailable service combination or an email-priced room in the
// selection) are stored as needs_quote and skip payment entirely.
func (s *DefaultCheckoutService) Confirm(ctx context.Context, sessionID string, data models.CheckoutData) (*models.Order, error) {
	session, err := s.QuoteSvc.GetQuote(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.DeviceID != "" {
		status, err := s.TermsSvc.Status(ctx, session.DeviceID)
		if err != nil {
			return nil, fmt.Errorf("failed to check terms acceptance: %w", err)
		}
		if !status.Accepted {
			return nil, quote.NewQuoteError("termsNotAccepted", "the current terms of service must be accepted before checkout")
		}
	} else if !data.AcceptedTerms {
		// Anonymous sessions have no stored acceptance record, so the
		// checkout payload itself must carry the acceptance.
		return nil, quote.NewQuoteError("termsNotAccepted", "the current terms of service must be accepted before checkout")
	}

	result, err := s.QuoteSvc.CompleteQuote(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if result.Rooms.TotalRooms() == 0 {
		return nil, quote.NewQuoteError("emptySelection", "select at least one room before checkout")
	}

	order := models.Order{
		SessionID: sessionID,
		DeviceID:  session.DeviceID,
		Quote:     *result,
		Checkout:  data,
		Status:    models.OrderStatusConfirmed,
	}
	order.Checkout.Payment.Status = "pending"

	if !result.Breakdown.IsServiceAvailable || s.hasEmailPricedRoom(result.Rooms) {
		order.Status = models.OrderStatusNeedsQuote
	} else if data.Payment.Method == models.PaymentMethodCard {
		amountCents := int64(math.Round(result.Breakdown.TotalPrice * 100))
		description := fmt.Sprintf("Tidybook cleaning, %d rooms", result.Rooms.TotalRooms())
		intentID, clientSecret, err := s.Payments.CreatePaymentIntent(ctx, amountCents, "usd", description, map[string]string{
			"sessionId": sessionID,
		})
		if err != nil {
			return nil, err
		}
		order.Checkout.Payment.PaymentIntentID = intentID
		order.Checkout.Payment.ClientSecret = clientSecret
		order.Checkout.Payment.Status = "requires_confirmation"
	}

	orderID, err := s.Orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}
	order.ID = orderID

	s.Logger.Info("order created",
		zap.String("orderId", orderID),
		zap.String("status", order.Status),
		zap.Float64("total", result.Breakdown.TotalPrice))
	return &order, nil
}

func (s *DefaultCheckoutService) hasEmailPricedRoom(rooms models.RoomSelection) bool {
	for roomType, count := range rooms {
		if count > 0 && s.Catalog.RequiresEmailPricing(roomType) {
			return true
		}
	}
	return false
}
