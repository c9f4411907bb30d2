package middleware

import (
	"errors"
	"net/http"

	"impulse-vlsi-backend/internal/delivery/http/response"
	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/apperror"
	"impulse-vlsi-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const GenericErrorMessage = "An unexpected error occurred. Please try again later."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		requestID := c.GetString(string(domain.KeyRequestID))

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", requestID,
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose internal error details to clients
		logger.Log.Error("Internal Server Error", "request_id", requestID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, GenericErrorMessage, nil)
	}
}

// Recovery turns a panic into the same generic 500 body as any other failure.
// Handlers may store a route-specific text under FailureMessageKey.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered",
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"path", c.FullPath(),
			"panic", recovered,
		)

		message := c.GetString(FailureMessageKey)
		if message == "" {
			message = GenericErrorMessage
		}
		response.Error(c, http.StatusInternalServerError, message, nil)
		c.Abort()
	})
}

// FailureMessageKey is the gin context key holding a route's generic failure text
const FailureMessageKey = "FailureMessage"
