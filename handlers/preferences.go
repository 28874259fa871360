package handlers

import (
	"errors"
	"net/http"

	prefsRepo "tidybook/database/repository/preferences"
	"tidybook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PreferencesHandler serves saved per-device quote preferences.
type PreferencesHandler struct {
	Repo   prefsRepo.PreferencesRepository
	Logger *zap.Logger
}

func NewPreferencesHandler(repo prefsRepo.PreferencesRepository, logger *zap.Logger) *PreferencesHandler {
	return &PreferencesHandler{Repo: repo, Logger: logger}
}

// GetPreferencesHandler handles GET /api/preferences/:deviceID.
func (h *PreferencesHandler) GetPreferencesHandler(c *gin.Context) {
	deviceID := c.Param("deviceID")

	prefs, err := h.Repo.GetByDeviceID(c.Request.Context(), deviceID)
	if err != nil {
		h.Logger.Error("GetPreferences: lookup failed",
			zap.String("deviceId", deviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to fetch preferences",
			"message": err.Error(),
		})
		return
	}
	if prefs == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "preferences not found",
			"message": "no saved preferences for this device",
		})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// UpdatePreferencesHandler handles PUT /api/preferences/:deviceID.
func (h *PreferencesHandler) UpdatePreferencesHandler(c *gin.Context) {
	deviceID := c.Param("deviceID")

	var prefs models.UserPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}
	prefs.DeviceID = deviceID

	if err := h.Repo.Upsert(c.Request.Context(), prefs); err != nil {
		h.Logger.Error("UpdatePreferences: upsert failed",
			zap.String("deviceId", deviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to save preferences",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// DeletePreferencesHandler handles DELETE /api/preferences/:deviceID.
func (h *PreferencesHandler) DeletePreferencesHandler(c *gin.Context) {
	deviceID := c.Param("deviceID")

	if err := h.Repo.DeleteByDeviceID(c.Request.Context(), deviceID); err != nil {
		if errors.Is(err, prefsRepo.ErrPreferencesNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "preferences not found",
				"message": err.Error(),
			})
			return
		}
		h.Logger.Error("DeletePreferences: delete failed",
			zap.String("deviceId", deviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to delete preferences",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
