package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/api/handlers"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/api/middleware"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/catalog"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/config"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/service"
)

// Services bundles what the HTTP layer depends on
type Services struct {
	Catalog  catalog.Provider
	Carts    *service.CartService
	Checkout *service.CheckoutService
	Orders   *service.OrderService
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svcs Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/products", handlers.HandleListProducts(svcs.Catalog, logger))
		v1.GET("/products/:id", handlers.HandleGetProduct(svcs.Catalog, logger))

		// Shopper routes are scoped to the caller's session
		shopperRoutes := v1.Group("")
		shopperRoutes.Use(middleware.SessionMiddleware(logger))
		{
			shopperRoutes.GET("/cart", handlers.HandleGetCart(svcs.Carts, logger))
			shopperRoutes.POST("/cart/items", handlers.HandleAddCartItem(svcs.Carts, logger))
			shopperRoutes.PATCH("/cart/items/:id", handlers.HandleUpdateCartItem(svcs.Carts, logger))
			shopperRoutes.DELETE("/cart/items/:id", handlers.HandleRemoveCartItem(svcs.Carts, logger))

			shopperRoutes.POST("/checkout", handlers.HandleCheckout(svcs.Carts, svcs.Checkout, logger))

			shopperRoutes.GET("/orders", handlers.HandleListOrders(svcs.Orders, logger))
			shopperRoutes.GET("/orders/:id", handlers.HandleGetOrder(svcs.Orders, logger))
		}

		adminRoutes := v1.Group("/admin")
		adminRoutes.Use(middleware.AdminAuthMiddleware(cfg.Admin.KeyHash, logger))
		{
			adminRoutes.PATCH("/sessions/:session/orders/:id/status", handlers.HandleUpdateOrderStatus(svcs.Orders, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		fields := []zap.Field{
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		if sessionID, ok := middleware.GetSessionID(c); ok {
			fields = append(fields, zap.String("session", sessionID))
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		logger.Info("HTTP request", fields...)
	}
}
