package pricing

import (
	"tidybook/models"

	"go.uber.org/zap"
)

// ComputeRoomConfiguration derives a room's configured price from its tier,
// add-on, and reduction selections. Unknown tier names fall back to the base
// tier; unknown add-on or reduction ids contribute nothing. The result is
// recomputed in full on every call; callers invoke it on mount and again on
// each selection change.
func (s *DefaultPricingService) ComputeRoomConfiguration(roomType string, input models.RoomConfigurationInput) models.RoomConfiguration {
	tiers := s.Catalog.GetRoomTiers(roomType)

	var tierName string
	var tierPrice float64
	if len(tiers) > 0 {
		tierName = tiers[0].Name
		tierPrice = tiers[0].Price
	}
	for _, tier := range tiers {
		if tier.Name == input.SelectedTier {
			tierName = tier.Name
			tierPrice = tier.Price
			break
		}
	}

	addOnPrices := make(map[string]float64)
	for _, addOn := range s.Catalog.GetRoomAddOns(roomType) {
		addOnPrices[addOn.ID] = addOn.Price
	}
	addOnsTotal := 0.0
	for _, id := range input.SelectedAddOns {
		price, ok := addOnPrices[id]
		if !ok && s.Logger != nil {
			s.Logger.Debug("unknown add-on id ignored",
				zap.String("roomType", roomType), zap.String("addOnId", id))
		}
		addOnsTotal += price
	}

	reductionDiscounts := make(map[string]float64)
	for _, reduction := range s.Catalog.GetRoomReductions(roomType) {
		reductionDiscounts[reduction.ID] = reduction.Discount
	}
	reductionsTotal := 0.0
	for _, id := range input.SelectedReductions {
		reductionsTotal += reductionDiscounts[id]
	}

	total := tierPrice + addOnsTotal - reductionsTotal
	if total < 0 {
		total = 0
	}

	return models.RoomConfiguration{
		RoomName:           roomType,
		SelectedTier:       tierName,
		SelectedAddOns:     input.SelectedAddOns,
		SelectedReductions: input.SelectedReductions,
		TotalPrice:         round2(total),
	}
}
