package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"audio-relay/internal/api/errors"
)

// ErrorHandler recovers from panics and answers with a JSON 500
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		requestID := c.GetString(RequestIDKey)

		var apiErr *errors.APIError

		switch err := recovered.(type) {
		case *errors.APIError:
			apiErr = err
		case error:
			logger.Error("Internal server error",
				zap.Error(err),
				zap.String("request_id", requestID),
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
			)
			apiErr = errors.NewInternalError("")
		default:
			logger.Error("Unknown panic occurred",
				zap.Any("recovered", recovered),
				zap.String("request_id", requestID),
			)
			apiErr = errors.NewInternalError("")
		}

		apiErr.RequestID = requestID
		c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
	})
}

// HandleError writes err as a JSON error response. Errors that are not
// already APIErrors go through errors.FromProviderError.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	apiErr := errors.FromProviderError(err)
	apiErr.RequestID = c.GetString(RequestIDKey)
	_ = c.Error(err)

	log := Logger(c)
	if apiErr.HTTPStatus() >= 500 {
		log.Error("request failed", zap.String("kind", string(apiErr.Kind)), zap.Error(err))
	} else {
		log.Debug("request rejected", zap.String("kind", string(apiErr.Kind)), zap.Error(err))
	}

	c.AbortWithStatusJSON(apiErr.HTTPStatus(), apiErr)
}
