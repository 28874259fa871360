package models

// RoomSelection maps a room-type identifier to the number of rooms of that
// type the customer wants cleaned. A count of 0 excludes the room from pricing.
type RoomSelection map[string]int

// TotalRooms returns the total number of selected room instances.
func (rs RoomSelection) TotalRooms() int {
	total := 0
	for _, count := range rs {
		if count > 0 {
			total += count
		}
	}
	return total
}

// RoomRates holds a room type's base per-room prices and display metadata.
type RoomRates struct {
	RoomType      string  `bson:"roomType" json:"roomType"`
	Name          string  `bson:"name" json:"name"`
	Description   string  `bson:"description" json:"description,omitempty"`
	StandardPrice float64 `bson:"standardPrice" json:"standardPrice"`
	DetailedPrice float64 `bson:"detailedPrice" json:"detailedPrice"`
	// IsPriceTBD rooms are never priced online; the customer is directed
	// to email for a custom quote instead.
	IsPriceTBD bool `bson:"isPriceTbd" json:"isPriceTbd,omitempty"`
}

// RoomTier is a named cleaning-thoroughness level with an absolute per-room price.
// Tiers form an ordered list per room type; index 0 is the base tier.
type RoomTier struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description" json:"description"`
	Price       float64  `bson:"price" json:"price"`
	Features    []string `bson:"features" json:"features"`
}

// RoomAddOn is an optional extra service with a positive price addition.
type RoomAddOn struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Price       float64 `bson:"price" json:"price"`
	Description string  `bson:"description" json:"description"`

	// Compatibility constraints evaluated against the current selection.
	Requires        []string `bson:"requires,omitempty" json:"requires,omitempty"`
	Conflicts       []string `bson:"conflicts,omitempty" json:"conflicts,omitempty"`
	RecommendedWith []string `bson:"recommendedWith,omitempty" json:"recommendedWith,omitempty"`
}

// RoomReduction is an opt-out of a default service, worth a price subtraction.
// The Discount field is an amount subtracted from the room price, not a rate.
type RoomReduction struct {
	ID          string  `bson:"id" json:"id"`
	Name        string  `bson:"name" json:"name"`
	Discount    float64 `bson:"discount" json:"discount"`
	Description string  `bson:"description" json:"description"`
}

// RoomConfigurationInput carries the customer's selections for one room.
type RoomConfigurationInput struct {
	SelectedTier       string   `json:"selectedTier"`
	SelectedAddOns     []string `json:"selectedAddOns"`
	SelectedReductions []string `json:"selectedReductions"`
}

// RoomConfiguration is the derived per-room record, recomputed on every
// selection change.
type RoomConfiguration struct {
	RoomName           string   `bson:"roomName" json:"roomName"`
	SelectedTier       string   `bson:"selectedTier" json:"selectedTier"`
	SelectedAddOns     []string `bson:"selectedAddOns" json:"selectedAddOns"`
	SelectedReductions []string `bson:"selectedReductions" json:"selectedReductions"`
	TotalPrice         float64  `bson:"totalPrice" json:"totalPrice"`
}

// CompatibilityStatus reports how a candidate add-on relates to the current
// selection. Blocked items may not be newly selected; already-selected items
// that later become contradicted are only flagged, never auto-deselected.
type CompatibilityStatus struct {
	AddOnID               string   `json:"addOnId"`
	Blocked               bool     `json:"blocked"`
	HasCompatibilityIssue bool     `json:"hasCompatibilityIssue"`
	MissingRequires       []string `json:"missingRequires,omitempty"`
	ActiveConflicts       []string `json:"activeConflicts,omitempty"`
	Recommended           bool     `json:"recommended"`
}
