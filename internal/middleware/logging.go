package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/logger"
)

// Logging writes one structured line per request once it completes.
// Server errors log at error level, client errors at warn.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.Int("bytes", c.Writer.Size()),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		log := logger.WithRequestID(GetRequestID(c))
		ctx := c.Request.Context()
		switch {
		case status >= 500:
			log.ErrorContext(ctx, "Request failed", attrs...)
		case status >= 400:
			log.WarnContext(ctx, "Request rejected", attrs...)
		default:
			log.InfoContext(ctx, "Request completed", attrs...)
		}
	}
}
