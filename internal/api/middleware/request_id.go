package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// RequestIDKey is the gin context key holding the request id
	RequestIDKey = "request_id"
	// LoggerKey is the gin context key holding the request-scoped logger
	LoggerKey = "logger"
)

// RequestID adds a unique request ID to each request and stores a logger
// tagged with it in the context.
func RequestID(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(RequestIDKey, requestID)
		c.Set(LoggerKey, logger.With(zap.String("request_id", requestID)))
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// Logger returns the request-scoped logger, or a no-op logger when the
// RequestID middleware didn't run.
func Logger(c *gin.Context) *zap.Logger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(*zap.Logger); ok {
			return l
		}
	}
	return zap.NewNop()
}
