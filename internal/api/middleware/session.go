package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// SessionHeader carries the shopper's session id
	SessionHeader = "X-Session-ID"

	sessionKey = "session_id"
)

// SessionMiddleware resolves the session a request belongs to. Requests
// without a valid UUID in SessionHeader get a fresh session id, which is
// echoed back in the response header.
func SessionMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(SessionHeader)

		id, err := uuid.Parse(raw)
		if err != nil {
			if raw != "" {
				logger.Debug("Replacing malformed session id", zap.String("session", raw))
			}
			id = uuid.New()
		}

		sessionID := id.String()
		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)

		c.Next()
	}
}

// GetSessionID retrieves the session id from gin context
func GetSessionID(c *gin.Context) (string, bool) {
	val, exists := c.Get(sessionKey)
	if !exists {
		return "", false
	}
	sessionID, ok := val.(string)
	return sessionID, ok
}
