package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"production-plan/internal/api/models"
	"production-plan/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers panics, logs them with the request ID and stack,
// and answers with a generic INTERNAL_ERROR.
func ErrorHandler(log logger.Logger) gin.HandlerFunc {
	if log == nil {
		log = logger.NopLogger{}
	}
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("panic handling %s %s (request_id=%s): %v\n%s",
			c.Request.Method, c.Request.URL.Path, RequestID(c), recovered, debug.Stack())

		message := "An unexpected error occurred"
		if err, ok := recovered.(string); ok {
			message = err
		} else if err, ok := recovered.(error); ok {
			message = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
				Details: map[string]interface{}{"request_id": RequestID(c)},
			},
		})
	})
}

// NotFound answers unknown routes with the JSON error envelope.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "NOT_FOUND",
			Message: fmt.Sprintf("no route for %s %s", c.Request.Method, c.Request.URL.Path),
		},
	})
}
