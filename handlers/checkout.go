package handlers

import (
	"errors"
	"net/http"

	"tidybook/models"
	checkoutSvc "tidybook/services/checkout"
	"tidybook/services/quote"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CheckoutHandler finalizes orders.
type CheckoutHandler struct {
	CheckoutSvc checkoutSvc.CheckoutService
	Logger      *zap.Logger
}

func NewCheckoutHandler(svc checkoutSvc.CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{CheckoutSvc: svc, Logger: logger}
}

// ConfirmCheckoutHandler handles POST /api/checkout/confirm.
func (h *CheckoutHandler) ConfirmCheckoutHandler(c *gin.Context) {
	var body struct {
		SessionID string              `json:"sessionId" binding:"required"`
		Checkout  models.CheckoutData `json:"checkout" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		h.Logger.Error("ConfirmCheckout: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	// The session token validated by the middleware must match the session
	// being checked out.
	if tokenID, ok := c.Get("sessionID"); ok && tokenID != body.SessionID {
		c.JSON(http.StatusForbidden, gin.H{
			"error":   "session mismatch",
			"message": "session token does not match the session being checked out",
		})
		return
	}

	order, err := h.CheckoutSvc.Confirm(c.Request.Context(), body.SessionID, body.Checkout)
	if err != nil {
		var qerr *quote.QuoteError
		switch {
		case errors.Is(err, quote.ErrSessionNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error":   "quote session not found",
				"message": err.Error(),
			})
		case errors.As(err, &qerr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   qerr.Code,
				"message": qerr.Message,
			})
		default:
			h.Logger.Error("ConfirmCheckout: failed to confirm order", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to confirm order",
				"message": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}
