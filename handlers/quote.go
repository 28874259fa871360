package handlers

import (
	"errors"
	"net/http"
	"time"

	"tidybook/models"
	"tidybook/services/quote"
	"tidybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionTokenTTL = 45 * time.Minute

// QuoteHandler serves the pricing wizard session endpoints.
type QuoteHandler struct {
	QuoteSvc quote.QuoteSessionService
	Logger   *zap.Logger
}

func NewQuoteHandler(quoteSvc quote.QuoteSessionService, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{QuoteSvc: quoteSvc, Logger: logger}
}

// InitiateQuoteHandler handles POST /api/quote/session.
func (h *QuoteHandler) InitiateQuoteHandler(c *gin.Context) {
	var body struct {
		DeviceID string `json:"deviceId"`
	}
	// An empty body is fine; anonymous quotes just skip preference seeding.
	_ = c.ShouldBindJSON(&body)

	session, err := h.QuoteSvc.InitiateQuote(c.Request.Context(), body.DeviceID)
	if err != nil {
		h.Logger.Error("InitiateQuote: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to start quote session",
			"message": err.Error(),
		})
		return
	}

	token, err := utils.GenerateSessionToken(session.SessionID, sessionTokenTTL)
	if err != nil {
		h.Logger.Error("InitiateQuote: failed to sign session token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "failed to issue session token",
			"message": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, models.QuoteSessionResponse{
		SessionID: session.SessionID,
		Token:     token,
		Context:   session.Context,
		Breakdown: session.Breakdown,
	})
}

// GetQuoteHandler handles GET /api/quote/session/:sessionID.
func (h *QuoteHandler) GetQuoteHandler(c *gin.Context) {
	session, err := h.QuoteSvc.GetQuote(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.QuoteSessionResponse{
		SessionID: session.SessionID,
		Context:   session.Context,
		Breakdown: session.Breakdown,
	})
}

// UpdateQuoteHandler handles PUT /api/quote/session/:sessionID.
func (h *QuoteHandler) UpdateQuoteHandler(c *gin.Context) {
	var update quote.QuoteUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.Logger.Error("UpdateQuote: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	session, err := h.QuoteSvc.UpdateQuote(c.Request.Context(), c.Param("sessionID"), update)
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.QuoteSessionResponse{
		SessionID: session.SessionID,
		Context:   session.Context,
		Breakdown: session.Breakdown,
	})
}

// SaveRoomConfigurationHandler handles PUT /api/quote/session/:sessionID/rooms/:roomType.
func (h *QuoteHandler) SaveRoomConfigurationHandler(c *gin.Context) {
	var input models.RoomConfigurationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Error("SaveRoomConfiguration: invalid request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid request body",
			"message": err.Error(),
		})
		return
	}

	session, err := h.QuoteSvc.SaveRoomConfiguration(c.Request.Context(), c.Param("sessionID"), c.Param("roomType"), input)
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.QuoteSessionResponse{
		SessionID: session.SessionID,
		Context:   session.Context,
		Breakdown: session.Breakdown,
	})
}

// CompleteQuoteHandler handles POST /api/quote/session/:sessionID/complete.
func (h *QuoteHandler) CompleteQuoteHandler(c *gin.Context) {
	result, err := h.QuoteSvc.CompleteQuote(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CancelQuoteHandler handles DELETE /api/quote/session/:sessionID.
func (h *QuoteHandler) CancelQuoteHandler(c *gin.Context) {
	if err := h.QuoteSvc.CancelQuote(c.Request.Context(), c.Param("sessionID")); err != nil {
		h.respondQuoteError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

func (h *QuoteHandler) respondQuoteError(c *gin.Context, err error) {
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
		h.Logger.Error("quote session operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "quote session operation failed",
			"message": err.Error(),
		})
	}
}
