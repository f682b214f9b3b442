package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/service"
)

// HandleCheckout handles POST /v1/checkout
func HandleCheckout(carts *service.CartService, checkout *service.CheckoutService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFrom(c)
		if !ok {
			return
		}

		var req service.CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		cart, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, "Failed to load cart", err)
			return
		}

		// Unknown methods come back as "" and are rejected by PlaceOrder
		method, _ := domain.ParsePaymentMethod(req.PaymentMethod)

		order, err := checkout.PlaceOrder(c.Request.Context(), sessionID, cart.Items, req.Address, method)
		if err != nil {
			if c.Request.Context().Err() != nil {
				logger.Info("Client went away during checkout", zap.String("session", sessionID))
				c.Status(http.StatusRequestTimeout)
				return
			}
			respondError(c, logger, "Failed to place order", err)
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}
