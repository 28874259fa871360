package handlers

import (
	"net/http"

	"tidybook/services/support"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SupportHandler serves the scripted support-chat tree.
type SupportHandler struct {
	SupportSvc support.SupportService
	Logger     *zap.Logger
}

func NewSupportHandler(supportSvc support.SupportService, logger *zap.Logger) *SupportHandler {
	return &SupportHandler{SupportSvc: supportSvc, Logger: logger}
}

// SupportRootHandler handles GET /api/support/tree.
func (h *SupportHandler) SupportRootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.SupportSvc.Root())
}

// SupportReplyHandler handles POST /api/support/reply.
func (h *SupportHandler) SupportReplyHandler(c *gin.Context) {
	var body struct {
		NodeID      string `json:"nodeId" binding:"required"`
		OptionIndex *int   `json:"optionIndex" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, h.SupportSvc.Reply(body.NodeID, *body.OptionIndex))
}
