package catalog

import (
	"sort"
	"strings"
	"sync"

	"tidybook/models"
)

// StaticCatalog serves the built-in tables with optional runtime room-rate
// overrides. Lookups for unknown room types fall back to the "default" entry
// rather than failing; a misspelled id degrades, it never errors.
type StaticCatalog struct {
	mu        sync.RWMutex
	overrides map[string]models.RoomRates
}

// NewStaticCatalog returns the production catalog.
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{
		overrides: make(map[string]models.RoomRates),
	}
}

// ListRooms returns every bookable room type, sorted by identifier. The
// "default" fallback entry is not listed.
func (c *StaticCatalog) ListRooms() []models.RoomRates {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var rooms []models.RoomRates
	for roomType, rates := range defaultRoomRates {
		if roomType == DefaultRoomType {
			continue
		}
		if override, ok := c.overrides[roomType]; ok {
			rates = override
		}
		rooms = append(rooms, rates)
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].RoomType < rooms[j].RoomType })
	return rooms
}

// GetRoomRates returns the rates for a room type, falling back to the
// default entry when the type is unknown.
func (c *StaticCatalog) GetRoomRates(roomType string) models.RoomRates {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if override, ok := c.overrides[roomType]; ok {
		return override
	}
	if rates, ok := defaultRoomRates[roomType]; ok {
		return rates
	}
	return defaultRoomRates[DefaultRoomType]
}

// GetRoomTiers returns the ordered tier list for a room type. Index 0 is the
// base tier.
func (c *StaticCatalog) GetRoomTiers(roomType string) []models.RoomTier {
	if tiers, ok := defaultTiers[roomType]; ok {
		return tiers
	}
	return defaultTiers[DefaultRoomType]
}

// GetRoomAddOns returns the add-ons offered for a room type.
func (c *StaticCatalog) GetRoomAddOns(roomType string) []models.RoomAddOn {
	if addOns, ok := defaultAddOns[roomType]; ok {
		return addOns
	}
	return defaultAddOns[DefaultRoomType]
}

// GetRoomReductions returns the opt-out reductions for a room type.
func (c *StaticCatalog) GetRoomReductions(roomType string) []models.RoomReduction {
	if reductions, ok := defaultReductions[roomType]; ok {
		return reductions
	}
	return defaultReductions[DefaultRoomType]
}

// RequiresEmailPricing reports whether a room type is priced by custom quote
// only. Such rooms never contribute a numeric price to the online total.
func (c *StaticCatalog) RequiresEmailPricing(roomType string) bool {
	if roomType == "other" || strings.HasPrefix(roomType, "other-custom-") {
		return true
	}
	return c.GetRoomRates(roomType).IsPriceTBD
}

// SetRoomRates installs a runtime override for a room type's rates.
func (c *StaticCatalog) SetRoomRates(rates models.RoomRates) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.overrides[rates.RoomType] = rates
}
