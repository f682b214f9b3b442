package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/internal/api/middleware"
	"github.com/Padmapriyarajasekaran/azure-wood-glass-orders/pkg/errors"
)

// respondError maps typed service errors to HTTP statuses. Anything else is
// logged and reported as an internal error.
func respondError(c *gin.Context, logger *zap.Logger, msg string, err error) {
	switch e := err.(type) {
	case *errors.ValidationError:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "validation failed",
			"field":   e.Field,
			"details": e.Message,
		})
	case *errors.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": e.Error()})
	case *errors.ErrInvalidStateTransition:
		c.JSON(http.StatusBadRequest, gin.H{"error": e.Error()})
	case *errors.ErrConflict:
		c.JSON(http.StatusConflict, gin.H{"error": e.Error()})
	default:
		logger.Error(msg, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func sessionFrom(c *gin.Context) (string, bool) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session"})
		return "", false
	}
	return sessionID, true
}
