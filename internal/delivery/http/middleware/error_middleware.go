package middleware

import (
	"errors"
	"net/http"

	"github.com/FelipeFerreiradv/legal-lead-page-pro/internal/delivery/http/response"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/apperror"
	"github.com/FelipeFerreiradv/legal-lead-page-pro/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns stray errors appended to the context into the generic
// wire shape. Handlers answer their own defined outcomes; this is the last
// line for anything unexpected.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			reqID, _ := c.Get("RequestID")
			logger.Log.Error("unhandled request error", "error", err, "request_id", reqID)

			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, "internal_error")
				return
			}
			// Never expose internal error details for unexpected failures
			response.Error(c, http.StatusInternalServerError, "internal_error")
		}
	}
}
