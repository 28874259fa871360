package models

// Service types. Standard is the everyday clean; detailing is the premium,
// slower, corner-by-corner treatment.
const (
	ServiceTypeStandard  = "standard"
	ServiceTypeDetailing = "detailing"
)

// Cleaning frequencies.
const (
	FrequencyOneTime    = "one_time"
	FrequencyWeekly     = "weekly"
	FrequencyBiweekly   = "biweekly"
	FrequencyMonthly    = "monthly"
	FrequencySemiAnnual = "semi_annual"
	FrequencyAnnual     = "annual"
)

// Payment frequencies (billing cadence, independent of cleaning frequency).
const (
	PaymentPerService = "per_service"
	PaymentMonthly    = "monthly"
	PaymentYearly     = "yearly"
)

// PricingContext is the full wizard state a quote is computed from.
type PricingContext struct {
	Rooms               RoomSelection                `json:"rooms"`
	RoomConfigurations  map[string]RoomConfiguration `json:"roomConfigurations,omitempty"`
	ServiceType         string                       `json:"serviceType"`
	CleanlinessLevel    int                          `json:"cleanlinessLevel"`
	Frequency           string                       `json:"frequency"`
	PaymentFrequency    string                       `json:"paymentFrequency"`
	AllowVideoRecording bool                         `json:"allowVideoRecording"`
}

// PriceLine is one discount or surcharge entry in a breakdown. Percentage is
// nil for flat amounts such as the video discount and the service fee.
type PriceLine struct {
	Label      string   `json:"label"`
	Amount     float64  `json:"amount"`
	Percentage *float64 `json:"percentage,omitempty"`
}

// PriceBreakdown is the itemized result of a price calculation. It is
// regenerated from scratch on every input change; callers must not mutate and
// re-feed it.
type PriceBreakdown struct {
	BasePrice          float64     `json:"basePrice"`
	TotalPrice         float64     `json:"totalPrice"`
	Discounts          []PriceLine `json:"discounts"`
	Surcharges         []PriceLine `json:"surcharges"`
	IsServiceAvailable bool        `json:"isServiceAvailable"`
}

// QuoteResult is what the wizard hands to the checkout flow on completion:
// the breakdown plus the context it was computed from.
type QuoteResult struct {
	Rooms               RoomSelection  `json:"rooms"`
	ServiceType         string         `json:"serviceType"`
	CleanlinessLevel    int            `json:"cleanlinessLevel"`
	Frequency           string         `json:"frequency"`
	PaymentFrequency    string         `json:"paymentFrequency"`
	AllowVideoRecording bool           `json:"allowVideoRecording"`
	Breakdown           PriceBreakdown `json:"breakdown"`
}
