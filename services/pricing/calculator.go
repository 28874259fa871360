package pricing

import (
	"fmt"
	"math"

	"tidybook/models"

	"go.uber.org/zap"
)

// Calculate runs the full quote pipeline. Stage order is load-bearing: each
// percentage stage multiplies the already-adjusted running price, so the
// result compounds rather than summing percentages off the base. Intermediate
// values keep full float precision; only the final total and each display
// line are rounded.
func (s *DefaultPricingService) Calculate(pctx models.PricingContext) models.PriceBreakdown {
	breakdown := models.PriceBreakdown{
		Discounts:          []models.PriceLine{},
		Surcharges:         []models.PriceLine{},
		IsServiceAvailable: IsServiceAvailable(pctx.ServiceType, pctx.CleanlinessLevel),
	}

	base := s.basePrice(pctx)
	if pctx.Rooms.TotalRooms() == 0 {
		// Nothing selected: availability still reported, price is zero.
		breakdown.IsServiceAvailable = true
		return breakdown
	}
	breakdown.BasePrice = round2(base)
	price := base

	// Cleanliness multiplier.
	if pctx.CleanlinessLevel > 1 {
		if multiplier, ok := cleanlinessMultipliers[pctx.CleanlinessLevel]; ok && multiplier > 1 {
			delta := price * (multiplier - 1)
			breakdown.Surcharges = append(breakdown.Surcharges, models.PriceLine{
				Label:      fmt.Sprintf("Cleanliness level %d", pctx.CleanlinessLevel),
				Amount:     round2(delta),
				Percentage: pct((multiplier - 1) * 100),
			})
			price *= multiplier
		}
	}

	// Frequency surcharge, then frequency discount, in that order.
	freq := frequencyRates[pctx.Frequency]
	if freq.Surcharge > 0 {
		delta := price * freq.Surcharge
		breakdown.Surcharges = append(breakdown.Surcharges, models.PriceLine{
			Label:      freq.Label + " scheduling surcharge",
			Amount:     round2(delta),
			Percentage: pct(freq.Surcharge * 100),
		})
		price *= 1 + freq.Surcharge
	}
	if freq.Discount > 0 {
		delta := price * freq.Discount
		breakdown.Discounts = append(breakdown.Discounts, models.PriceLine{
			Label:      freq.Label + " schedule discount",
			Amount:     round2(delta),
			Percentage: pct(freq.Discount * 100),
		})
		price *= 1 - freq.Discount
	}

	// Payment-frequency discount layers on top.
	if payDiscount := paymentDiscounts[pctx.PaymentFrequency]; payDiscount > 0 {
		delta := price * payDiscount
		breakdown.Discounts = append(breakdown.Discounts, models.PriceLine{
			Label:      "Billing plan discount",
			Amount:     round2(delta),
			Percentage: pct(payDiscount * 100),
		})
		price *= 1 - payDiscount
	}

	// Flat video-recording discount, subtracted directly.
	if pctx.AllowVideoRecording {
		breakdown.Discounts = append(breakdown.Discounts, models.PriceLine{
			Label:  "Video recording discount",
			Amount: VideoRecordingDiscount,
		})
		price -= VideoRecordingDiscount
	}

	// Flat service fee, always applied last.
	breakdown.Surcharges = append(breakdown.Surcharges, models.PriceLine{
		Label:  "Service fee",
		Amount: ServiceFee,
	})
	price += ServiceFee

	total := round2(price)
	if total < 0 {
		total = 0
	}
	breakdown.TotalPrice = total
	return breakdown
}

// basePrice sums count × per-room price across selected room types. A room
// with a saved configuration uses its configured price; otherwise the
// catalog rate for the chosen service type applies. Email-pricing rooms never
// contribute a numeric price.
func (s *DefaultPricingService) basePrice(pctx models.PricingContext) float64 {
	total := 0.0
	for roomType, count := range pctx.Rooms {
		if count <= 0 {
			continue
		}
		if s.Catalog.RequiresEmailPricing(roomType) {
			if s.Logger != nil {
				s.Logger.Debug("room excluded from online total, custom quote required",
					zap.String("roomType", roomType))
			}
			continue
		}
		if cfg, ok := pctx.RoomConfigurations[roomType]; ok {
			total += float64(count) * cfg.TotalPrice
			continue
		}
		rates := s.Catalog.GetRoomRates(roomType)
		unit := rates.StandardPrice
		if pctx.ServiceType == models.ServiceTypeDetailing {
			unit = rates.DetailedPrice
		}
		total += float64(count) * unit
	}
	return total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func pct(v float64) *float64 {
	return &v
}
