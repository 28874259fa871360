package catalog

import "tidybook/models"

// DefaultRoomType is the fallback catalog entry. Unknown room types never
// fail a lookup; they degrade to this entry.
const DefaultRoomType = "default"

// CatalogProvider exposes read access to the room, tier, add-on, and
// reduction tables. The pricing engine only ever sees this interface so tests
// can substitute fixture catalogs.
type CatalogProvider interface {
	ListRooms() []models.RoomRates
	GetRoomRates(roomType string) models.RoomRates
	GetRoomTiers(roomType string) []models.RoomTier
	GetRoomAddOns(roomType string) []models.RoomAddOn
	GetRoomReductions(roomType string) []models.RoomReduction
	RequiresEmailPricing(roomType string) bool
}

// AdminCatalog extends CatalogProvider with runtime overrides for the
// admin-gated catalog endpoints.
type AdminCatalog interface {
	CatalogProvider
	SetRoomRates(rates models.RoomRates)
}
