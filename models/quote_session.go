package models

// QuoteSession holds the wizard state between initiation and checkout.
// Stored in Redis under its SessionID with a sliding TTL.
type QuoteSession struct {
	SessionID string         `json:"sessionId"`
	DeviceID  string         `json:"deviceId,omitempty"`
	Context   PricingContext `json:"context"`
	Breakdown PriceBreakdown `json:"breakdown"`
	Completed bool           `json:"completed"`
}

// QuoteSessionResponse is the wire shape returned to the client after
// initiation or any update.
type QuoteSessionResponse struct {
	SessionID string         `json:"sessionId"`
	Token     string         `json:"token,omitempty"`
	Context   PricingContext `json:"context"`
	Breakdown PriceBreakdown `json:"breakdown"`
}
