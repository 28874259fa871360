package handlers

import (
	"net/http"

	"tidybook/services/terms"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TermsHandler serves the terms-of-service gate.
type TermsHandler struct {
	TermsSvc terms.TermsService
	Logger   *zap.Logger
}

func NewTermsHandler(termsSvc terms.TermsService, logger *zap.Logger) *TermsHandler {
	return &TermsHandler{TermsSvc: termsSvc, Logger: logger}
}

// GetTermsHandler handles GET /api/terms.
func (h *TermsHandler) GetTermsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": h.TermsSvc.GetSections()})
}

// AcceptTermsHandler handles POST /api/terms/accept.
func (h *TermsHandler) AcceptTermsHandler(c *gin.Context) {
	var body struct {
		DeviceID string `json:"deviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	if err := h.TermsSvc.Accept(c.Request.Context(), body.DeviceID); err != nil {
		h.Logger.Error("AcceptTerms: failed to record acceptance",
			zap.String("deviceId", body.DeviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to record acceptance",
			"message": err.Error(),
		})
		return
	}

	status, err := h.TermsSvc.Status(c.Request.Context(), body.DeviceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read acceptance status",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, status)
}

// TermsStatusHandler handles GET /api/terms/status.
func (h *TermsHandler) TermsStatusHandler(c *gin.Context) {
	deviceID := c.Query("deviceId")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing device id",
			"message": "deviceId query parameter is required",
		})
		return
	}

	status, err := h.TermsSvc.Status(c.Request.Context(), deviceID)
	if err != nil {
		h.Logger.Error("TermsStatus: failed to read acceptance",
			zap.String("deviceId", deviceID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to read acceptance status",
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, status)
}
