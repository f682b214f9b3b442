package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/service"
)

// HandleUpdateOrderStatus handles PATCH /v1/admin/sessions/:session/orders/:id/status
func HandleUpdateOrderStatus(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		sessionID := c.Param("session")
		orderID := c.Param("id")

		order, err := orders.UpdateStatus(c.Request.Context(), sessionID, orderID, req.Status)
		if err != nil {
			respondError(c, logger, "Failed to update order status", err)
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
