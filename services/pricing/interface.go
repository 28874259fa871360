package pricing

import (
	"tidybook/models"
	"tidybook/services/catalog"

	"go.uber.org/zap"
)

// PricingService computes quotes and per-room configurations. Every method is
// a pure function of its inputs plus the injected catalog; recomputing with
// identical inputs yields identical output.
type PricingService interface {
	Calculate(pctx models.PricingContext) models.PriceBreakdown
	ComputeRoomConfiguration(roomType string, input models.RoomConfigurationInput) models.RoomConfiguration
	EvaluateAddOn(roomType, addOnID string, selectedAddOns, selectedReductions []string) models.CompatibilityStatus
}

// DefaultPricingService implements PricingService.
type DefaultPricingService struct {
	Catalog catalog.CatalogProvider
	Logger  *zap.Logger
}
