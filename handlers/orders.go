package handlers

import (
	"errors"
	"net/http"

	orderRepo "tidybook/database/repository/order"
	"tidybook/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrdersHandler serves placed-order lookups and cancellation.
type OrdersHandler struct {
	Orders orderRepo.OrderRepository
	Logger *zap.Logger
}

func NewOrdersHandler(orders orderRepo.OrderRepository, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{Orders: orders, Logger: logger}
}

// GetOrderHandler handles GET /api/orders/:orderID.
func (h *OrdersHandler) GetOrderHandler(c *gin.Context) {
	order, err := h.Orders.GetByID(c.Request.Context(), c.Param("orderID"))
	if err != nil {
		h.respondOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// ListOrdersHandler handles GET /api/orders?deviceId=...
func (h *OrdersHandler) ListOrdersHandler(c *gin.Context) {
	deviceID := c.Query("deviceId")
	if deviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "missing device id",
			"message": "deviceId query parameter is required",
		})
		return
	}

	orders, err := h.Orders.GetByDeviceID(c.Request.Context(), deviceID)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// CancelOrderHandler handles POST /api/orders/:orderID/cancel. Cancelling an
// already-cancelled order is a no-op.
func (h *OrdersHandler) CancelOrderHandler(c *gin.Context) {
	orderID := c.Param("orderID")

	order, err := h.Orders.GetByID(c.Request.Context(), orderID)
	if err != nil {
		h.respondOrderError(c, err)
		return
	}
	if order.Status != models.OrderStatusCancelled {
		if err := h.Orders.UpdateStatus(c.Request.Context(), orderID, models.OrderStatusCancelled); err != nil {
			h.respondOrderError(c, err)
			return
		}
		order.Status = models.OrderStatusCancelled
		h.Logger.Info("order cancelled", zap.String("orderId", orderID))
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrderHandler handles DELETE /api/admin/orders/:orderID.
func (h *OrdersHandler) DeleteOrderHandler(c *gin.Context) {
	orderID := c.Param("orderID")
	if err := h.Orders.DeleteByID(c.Request.Context(), orderID); err != nil {
		h.respondOrderError(c, err)
		return
	}
	h.Logger.Info("order deleted", zap.String("orderId", orderID))
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *OrdersHandler) respondOrderError(c *gin.Context, err error) {
	if errors.Is(err, orderRepo.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "order not found",
			"message": err.Error(),
		})
		return
	}
	h.Logger.Error("order operation failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "order operation failed",
		"message": err.Error(),
	})
}
