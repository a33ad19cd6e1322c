package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/feedback/internal/api/dto"
)

// ErrorHandlerMiddleware converts panics and unclaimed handler errors into
// the uniform error body. Domain errors are mapped to statuses inside the
// handlers; anything that lands here is an unexpected fault and reported
// generically so internals never leak into a response.
func ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error:   "Internal Server Error",
					Message: "An unexpected error occurred",
					Code:    http.StatusInternalServerError,
				})
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Bind errors that were attached instead of handled are the caller's
		// fault; everything else is ours.
		if last := c.Errors.Last(); last.Type == gin.ErrorTypeBind {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "Bad Request",
				Message: last.Error(),
				Code:    http.StatusBadRequest,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "Internal Server Error",
			Message: "An unexpected error occurred",
			Code:    http.StatusInternalServerError,
		})
	}
}
