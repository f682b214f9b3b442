package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

// AdminKeyHeader carries the plaintext admin API key
const AdminKeyHeader = "X-Admin-Key"

// AdminAuthMiddleware checks X-Admin-Key against a bcrypt hash. With an
// empty hash every request is rejected.
func AdminAuthMiddleware(keyHash string, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if keyHash == "" {
			logger.Warn("Admin request rejected, no admin key configured",
				zap.String("path", c.Request.URL.Path),
			)
			unauthorized(c, "admin access disabled")
			return
		}

		apiKey := c.GetHeader(AdminKeyHeader)
		if apiKey == "" {
			unauthorized(c, "missing admin key")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(keyHash), []byte(apiKey)); err != nil {
			logger.Warn("Invalid admin key", zap.String("path", c.Request.URL.Path))
			unauthorized(c, "invalid admin key")
			return
		}

		c.Next()
	}
}

// unauthorized records the rejection on the context for the request logger
// and aborts with 401.
func unauthorized(c *gin.Context, msg string) {
	err := &errors.ErrUnauthorized{Message: msg}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
}
