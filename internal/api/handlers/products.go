package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/catalog"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/domain"
)

// ProductListResponse represents the product listing
type ProductListResponse struct {
	Products []domain.Product `json:"products"`
	Count    int              `json:"count"`
}

// HandleListProducts handles GET /v1/products
func HandleListProducts(products catalog.Provider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		all, err := products.List(c.Request.Context())
		if err != nil {
			respondError(c, logger, "Failed to list products", err)
			return
		}

		filtered := catalog.Filter(all, c.Query("category"), c.Query("subcategory"))
		filtered = catalog.Search(filtered, c.Query("q"))

		c.JSON(http.StatusOK, ProductListResponse{
			Products: filtered,
			Count:    len(filtered),
		})
	}
}

// HandleGetProduct handles GET /v1/products/:id
func HandleGetProduct(products catalog.Provider, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		product, err := products.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, logger, "Failed to get product", err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
