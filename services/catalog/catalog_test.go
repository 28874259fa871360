package catalog

import (
	"reflect"
	"sort"
	"testing"

	"tidybook/models"
)

func TestListRooms_SortedWithoutDefault(t *testing.T) {
	c := NewStaticCatalog()

	rooms := c.ListRooms()
	if len(rooms) == 0 {
		t.Fatalf("expected a non-empty room list")
	}
	if !sort.SliceIsSorted(rooms, func(i, j int) bool { return rooms[i].RoomType < rooms[j].RoomType }) {
		t.Fatalf("room list is not sorted by room type")
	}
	for _, room := range rooms {
		if room.RoomType == DefaultRoomType {
			t.Fatalf("fallback entry must not be listed")
		}
	}
}

func TestUnknownRoomTypeFallsBack(t *testing.T) {
	c := NewStaticCatalog()

	rates := c.GetRoomRates("no-such-room")
	if rates.RoomType != DefaultRoomType {
		t.Fatalf("expected default rates for unknown room, got %q", rates.RoomType)
	}

	// Tiers, add-ons, and reductions degrade to the default tables too, so an
	// unknown room type is always structurally complete.
	if !reflect.DeepEqual(c.GetRoomTiers("no-such-room"), c.GetRoomTiers(DefaultRoomType)) {
		t.Fatalf("unknown room tiers differ from default tiers")
	}
	if !reflect.DeepEqual(c.GetRoomAddOns("no-such-room"), c.GetRoomAddOns(DefaultRoomType)) {
		t.Fatalf("unknown room add-ons differ from default add-ons")
	}
	if !reflect.DeepEqual(c.GetRoomReductions("no-such-room"), c.GetRoomReductions(DefaultRoomType)) {
		t.Fatalf("unknown room reductions differ from default reductions")
	}
}

func TestRoomSpecificTablesPreferred(t *testing.T) {
	c := NewStaticCatalog()

	kitchenTiers := c.GetRoomTiers("kitchen")
	baseTiers := c.GetRoomTiers(DefaultRoomType)
	if reflect.DeepEqual(kitchenTiers, baseTiers) {
		t.Fatalf("expected kitchen to carry its own tier table")
	}
	if len(kitchenTiers) == 0 {
		t.Fatalf("kitchen tier table is empty")
	}
}

func TestRequiresEmailPricing(t *testing.T) {
	c := NewStaticCatalog()

	cases := []struct {
		roomType string
		want     bool
	}{
		{"other", true},
		{"other-custom-greenhouse", true},
		{"bedroom", false},
		{"kitchen", false},
		{"no-such-room", false},
	}
	for _, tc := range cases {
		if got := c.RequiresEmailPricing(tc.roomType); got != tc.want {
			t.Fatalf("RequiresEmailPricing(%q) = %v, want %v", tc.roomType, got, tc.want)
		}
	}
}

func TestSetRoomRatesOverride(t *testing.T) {
	c := NewStaticCatalog()

	original := c.GetRoomRates("bedroom")
	c.SetRoomRates(models.RoomRates{
		RoomType:      "bedroom",
		Name:          original.Name,
		StandardPrice: original.StandardPrice + 10,
		DetailedPrice: original.DetailedPrice + 10,
	})

	updated := c.GetRoomRates("bedroom")
	if updated.StandardPrice != original.StandardPrice+10 {
		t.Fatalf("expected overridden standard price %v, got %v",
			original.StandardPrice+10, updated.StandardPrice)
	}

	// The override surfaces in the room list as well.
	for _, room := range c.ListRooms() {
		if room.RoomType == "bedroom" && room.StandardPrice != updated.StandardPrice {
			t.Fatalf("room list did not pick up the override")
		}
	}
}

func TestOverrideCanMarkRoomPriceTBD(t *testing.T) {
	c := NewStaticCatalog()

	c.SetRoomRates(models.RoomRates{RoomType: "garage", IsPriceTBD: true})
	if !c.RequiresEmailPricing("garage") {
		t.Fatalf("expected a price-TBD override to require email pricing")
	}
}
