package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/service"
)

// HandleGetCart handles GET /v1/cart
func HandleGetCart(carts *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFrom(c)
		if !ok {
			return
		}

		view, err := carts.Get(c.Request.Context(), sessionID)
		if err != nil {
			respondError(c, logger, "Failed to load cart", err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// HandleAddCartItem handles POST /v1/cart/items
func HandleAddCartItem(carts *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFrom(c)
		if !ok {
			return
		}

		var req service.AddCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		view, err := carts.AddItem(c.Request.Context(), sessionID, req)
		if err != nil {
			respondError(c, logger, "Failed to add cart item", err)
			return
		}
		c.JSON(http.StatusCreated, view)
	}
}

// HandleUpdateCartItem handles PATCH /v1/cart/items/:id
func HandleUpdateCartItem(carts *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFrom(c)
		if !ok {
			return
		}

		var req service.UpdateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		view, err := carts.UpdateItem(c.Request.Context(), sessionID, c.Param("id"), req)
		if err != nil {
			respondError(c, logger, "Failed to update cart item", err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// HandleRemoveCartItem handles DELETE /v1/cart/items/:id
func HandleRemoveCartItem(carts *service.CartService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, ok := sessionFrom(c)
		if !ok {
			return
		}

		view, err := carts.RemoveItem(c.Request.Context(), sessionID, c.Param("id"))
		if err != nil {
			respondError(c, logger, "Failed to remove cart item", err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}
