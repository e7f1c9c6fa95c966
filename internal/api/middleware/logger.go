package middleware

import (
	"time"

	"production-plan/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Logger writes one structured line per request.
func Logger(log *logger.ZerologLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		z := log.Zerolog()
		var ev *zerolog.Event
		switch {
		case status >= 500:
			ev = z.Error()
		case status >= 400:
			ev = z.Warn()
		default:
			ev = z.Info()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Str("request_id", RequestID(c)).
			Msg("request")
	}
}
