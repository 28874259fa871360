package catalog

import "tidybook/models"

// Static catalog tables. These are the production defaults; the admin
// endpoints can override room rates at runtime, tiers and add-ons ship fixed.

var defaultRoomRates = map[string]models.RoomRates{
	"bedroom": {
		RoomType:      "bedroom",
		Name:          "Bedroom",
		Description:   "Sleeping areas including guest rooms",
		StandardPrice: 45,
		DetailedPrice: 75,
	},
	"bathroom": {
		RoomType:      "bathroom",
		Name:          "Bathroom",
		Description:   "Full and half bathrooms",
		StandardPrice: 55,
		DetailedPrice: 90,
	},
	"kitchen": {
		RoomType:      "kitchen",
		Name:          "Kitchen",
		Description:   "Kitchen and pantry areas",
		StandardPrice: 65,
		DetailedPrice: 110,
	},
	"living-room": {
		RoomType:      "living-room",
		Name:          "Living Room",
		Description:   "Living and family rooms",
		StandardPrice: 50,
		DetailedPrice: 85,
	},
	"dining-room": {
		RoomType:      "dining-room",
		Name:          "Dining Room",
		StandardPrice: 40,
		DetailedPrice: 70,
	},
	"office": {
		RoomType:      "office",
		Name:          "Home Office",
		StandardPrice: 40,
		DetailedPrice: 65,
	},
	"basement": {
		RoomType:      "basement",
		Name:          "Basement",
		StandardPrice: 60,
		DetailedPrice: 100,
	},
	"garage": {
		RoomType:      "garage",
		Name:          "Garage",
		StandardPrice: 55,
		DetailedPrice: 95,
	},
	"laundry-room": {
		RoomType:      "laundry-room",
		Name:          "Laundry Room",
		StandardPrice: 35,
		DetailedPrice: 55,
	},
	"other": {
		RoomType:    "other",
		Name:        "Other Space",
		Description: "Sunrooms, attics, sheds, and anything unusual",
		IsPriceTBD:  true,
	},
	DefaultRoomType: {
		RoomType:      DefaultRoomType,
		Name:          "Room",
		StandardPrice: 45,
		DetailedPrice: 80,
	},
}

var defaultTiers = map[string][]models.RoomTier{
	"kitchen": {
		{
			Name:        "Essential",
			Description: "Counters, sink, stovetop, and floors",
			Price:       65,
			Features:    []string{"Counter wipe-down", "Sink scrub", "Floor mop"},
		},
		{
			Name:        "Premium",
			Description: "Essential plus appliance exteriors and cabinet fronts",
			Price:       95,
			Features:    []string{"Appliance exteriors", "Cabinet fronts", "Backsplash degrease"},
		},
		{
			Name:        "Deluxe",
			Description: "Premium plus inside-appliance detailing",
			Price:       125,
			Features:    []string{"Inside oven", "Inside fridge", "Grout brightening"},
		},
	},
	"bathroom": {
		{
			Name:        "Essential",
			Description: "Toilet, sink, mirror, and floors",
			Price:       55,
			Features:    []string{"Toilet scrub", "Mirror polish", "Floor mop"},
		},
		{
			Name:        "Premium",
			Description: "Essential plus shower and tub descaling",
			Price:       80,
			Features:    []string{"Shower descale", "Tub scrub", "Tile wipe-down"},
		},
		{
			Name:        "Deluxe",
			Description: "Premium plus grout and fixture detailing",
			Price:       105,
			Features:    []string{"Grout scrub", "Fixture polish", "Exhaust fan dusting"},
		},
	},
	DefaultRoomType: {
		{
			Name:        "Essential",
			Description: "Dust, vacuum, and surface wipe-down",
			Price:       45,
			Features:    []string{"Dusting", "Vacuuming", "Surface wipe-down"},
		},
		{
			Name:        "Premium",
			Description: "Essential plus edges, vents, and spot walls",
			Price:       65,
			Features:    []string{"Baseboards", "Vent dusting", "Wall spot-cleaning"},
		},
		{
			Name:        "Deluxe",
			Description: "Premium plus full detail of every reachable surface",
			Price:       85,
			Features:    []string{"Furniture moved", "Door frames", "Light fixtures"},
		},
	},
}

var defaultAddOns = map[string][]models.RoomAddOn{
	"kitchen": {
		{
			ID:          "inside-oven",
			Name:        "Inside Oven",
			Price:       25,
			Description: "Degrease and scrub the oven interior",
		},
		{
			ID:          "inside-fridge",
			Name:        "Inside Fridge",
			Price:       20,
			Description: "Empty shelves wiped and sanitized",
		},
		{
			ID:              "cabinet-interiors",
			Name:            "Cabinet Interiors",
			Price:           30,
			Description:     "Wipe down inside of cabinets and drawers",
			RecommendedWith: []string{"inside-fridge"},
		},
		{
			ID:          "dish-washing",
			Name:        "Dish Washing",
			Price:       15,
			Description: "Wash and dry dishes left in the sink",
		},
	},
	"bedroom": {
		{
			ID:          "closet-organization",
			Name:        "Closet Organization",
			Price:       25,
			Description: "Fold and arrange closet contents",
		},
		{
			ID:          "linen-change",
			Name:        "Linen Change",
			Price:       12,
			Description: "Strip and remake beds with fresh linens",
		},
		{
			ID:          "under-bed",
			Name:        "Under-Bed Cleaning",
			Price:       10,
			Description: "Vacuum and dust beneath beds",
		},
	},
	DefaultRoomType: {
		{
			ID:          "inside-windows",
			Name:        "Inside Windows",
			Price:       15,
			Description: "Glass and sills on the interior side",
		},
		{
			ID:          "blind-detail",
			Name:        "Blind Detailing",
			Price:       18,
			Description: "Slat-by-slat blind cleaning",
			Requires:    []string{"inside-windows"},
		},
		{
			ID:          "wall-washing",
			Name:        "Wall Washing",
			Price:       20,
			Description: "Full wall wash beyond spot-cleaning",
		},
		{
			ID:          "deep-carpet",
			Name:        "Deep Carpet Treatment",
			Price:       25,
			Description: "Hot-water extraction for carpeted floors",
			Conflicts:   []string{"hardwood-polish"},
		},
		{
			ID:          "hardwood-polish",
			Name:        "Hardwood Polish",
			Price:       22,
			Description: "Buff and polish hardwood floors",
			Conflicts:   []string{"deep-carpet"},
		},
	},
}

var defaultReductions = map[string][]models.RoomReduction{
	DefaultRoomType: {
		{
			ID:          "skip-dusting",
			Name:        "Skip Dusting",
			Discount:    8,
			Description: "Leave shelves and surfaces as they are",
		},
		{
			ID:          "skip-vacuum",
			Name:        "Skip Vacuuming",
			Discount:    10,
			Description: "No floor vacuuming this visit",
		},
		{
			ID:          "skip-mopping",
			Name:        "Skip Mopping",
			Discount:    9,
			Description: "No wet mopping of hard floors",
		},
		{
			ID:          "own-supplies",
			Name:        "Customer Supplies",
			Discount:    5,
			Description: "We use cleaning products you provide",
		},
	},
}
