package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/service"
)

// OrderListResponse represents the order history of a session
type OrderListResponse struct {
	Orders []domain.Order `json:"orders"`
	Count  int            `json:"count"`
}

// HandleListOrders handles GET /v1/orders
func HandleListOrders(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFrom(c)
		if !ok {
			return
		}

		list, err := orders.List(c.Request.Context(), sessionID, c.Query("status"), c.Query("q"))
		if err != nil {
			respondError(c, logger, "Failed to list orders", err)
			return
		}

		c.JSON(http.StatusOK, OrderListResponse{
			Orders: list,
			Count:  len(list),
		})
	}
}

// HandleGetOrder handles GET /v1/orders/:id
func HandleGetOrder(orders *service.OrderService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFrom(c)
		if !ok {
			return
		}

		order, err := orders.Get(c.Request.Context(), sessionID, c.Param("id"))
		if err != nil {
			respondError(c, logger, "Failed to get order", err)
			return
		}
		c.JSON(http.StatusOK, order)
	}
}
