package pricing

import "tidybook/models"

// Flat adjustments. The video discount rewards customers who allow the crew
// to record the visit; the service fee covers dispatch and supplies.
const (
	VideoRecordingDiscount = 25.0
	ServiceFee             = 15.0
)

// cleanlinessMultipliers scale the base price by current room soil state.
// Level 1 is move-in clean and carries no multiplier.
var cleanlinessMultipliers = map[int]float64{
	1: 1.0,
	2: 1.3,
	3: 1.7,
	4: 2.5,
}

type frequencyRate struct {
	Label     string
	Surcharge float64
	Discount  float64
}

// frequencyRates pair a scheduling surcharge with a loyalty discount per
// cleaning cadence. The surcharge applies before the discount; both compound
// on the running price.
var frequencyRates = map[string]frequencyRate{
	models.FrequencyOneTime:    {Label: "One-time"},
	models.FrequencyWeekly:     {Label: "Weekly", Surcharge: 0.05, Discount: 0.12},
	models.FrequencyBiweekly:   {Label: "Biweekly", Surcharge: 0.03, Discount: 0.08},
	models.FrequencyMonthly:    {Label: "Monthly", Discount: 0.05},
	models.FrequencySemiAnnual: {Label: "Semi-annual", Surcharge: 0.02},
	models.FrequencyAnnual:     {Label: "Annual", Surcharge: 0.02},
}

// paymentDiscounts reward upfront billing cadences.
var paymentDiscounts = map[string]float64{
	models.PaymentPerService: 0,
	models.PaymentMonthly:    0.05,
	models.PaymentYearly:     0.18,
}
