package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"godev-site-backend/internal/delivery/http/response"
	"godev-site-backend/pkg/apperror"
	"godev-site-backend/pkg/logger"
)

// ErrorHandler renders errors pushed onto the gin context through the
// uniform envelope. Validation errors keep their field map; anything
// that is not an AppError is logged server-side and reported as a
// generic 500 so internals never leak to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed",
					"path", c.Request.URL.Path,
					"error", appErr.Err,
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Fields)
			return
		}

		logger.Log.Error("unhandled error",
			"path", c.Request.URL.Path,
			"error", err,
		)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
