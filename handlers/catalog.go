package handlers

import (
	"net/http"

	"tidybook/models"
	"tidybook/services/catalog"
	"tidybook/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler serves the room/tier/add-on/reduction catalog.
type CatalogHandler struct {
	Catalog    catalog.AdminCatalog
	PricingSvc pricing.PricingService
	Logger     *zap.Logger
}

func NewCatalogHandler(cat catalog.AdminCatalog, pricingSvc pricing.PricingService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Catalog: cat, PricingSvc: pricingSvc, Logger: logger}
}

// ListRoomsHandler handles GET /api/catalog/rooms.
func (h *CatalogHandler) ListRoomsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rooms": h.Catalog.ListRooms()})
}

// GetRoomTiersHandler handles GET /api/catalog/rooms/:roomType/tiers.
func (h *CatalogHandler) GetRoomTiersHandler(c *gin.Context) {
	roomType := c.Param("roomType")
	c.JSON(http.StatusOK, gin.H{
		"roomType":             roomType,
		"tiers":                h.Catalog.GetRoomTiers(roomType),
		"requiresEmailPricing": h.Catalog.RequiresEmailPricing(roomType),
	})
}

// GetRoomAddOnsHandler handles GET /api/catalog/rooms/:roomType/addons.
func (h *CatalogHandler) GetRoomAddOnsHandler(c *gin.Context) {
	roomType := c.Param("roomType")
	c.JSON(http.StatusOK, gin.H{
		"roomType": roomType,
		"addOns":   h.Catalog.GetRoomAddOns(roomType),
	})
}

// GetRoomReductionsHandler handles GET /api/catalog/rooms/:roomType/reductions.
func (h *CatalogHandler) GetRoomReductionsHandler(c *gin.Context) {
	roomType := c.Param("roomType")
	c.JSON(http.StatusOK, gin.H{
		"roomType":   roomType,
		"reductions": h.Catalog.GetRoomReductions(roomType),
	})
}

// EvaluateCompatibilityHandler handles POST /api/catalog/rooms/:roomType/compatibility.
func (h *CatalogHandler) EvaluateCompatibilityHandler(c *gin.Context) {
	roomType := c.Param("roomType")

	var body struct {
		AddOnID            string   `json:"addOnId" binding:"required"`
		SelectedAddOns     []string `json:"selectedAddOns"`
		SelectedReductions []string `json:"selectedReductions"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("EvaluateCompatibility: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	status := h.PricingSvc.EvaluateAddOn(roomType, body.AddOnID, body.SelectedAddOns, body.SelectedReductions)
	c.JSON(http.StatusOK, status)
}

// UpdateRoomRatesHandler handles PUT /api/admin/catalog/rooms/:roomType.
func (h *CatalogHandler) UpdateRoomRatesHandler(c *gin.Context) {
	roomType := c.Param("roomType")

	var rates models.RoomRates
	if err := c.ShouldBindJSON(&rates); err != nil {
		h.Logger.Error("UpdateRoomRates: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}
	rates.RoomType = roomType

	h.Catalog.SetRoomRates(rates)
	h.Logger.Info("room rates overridden", zap.String("roomType", roomType))
	c.JSON(http.StatusOK, h.Catalog.GetRoomRates(roomType))
}
