package middleware

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Dirk1989/Ideal/internal/logger"
	"github.com/Dirk1989/Ideal/internal/metrics"
)

// Limiter decides whether a key may make another request.
type Limiter interface {
	Allow(key string) (ok bool, retryAfter time.Duration)
	Remaining(key string) int
	Limit() int
}

// RateLimit throttles requests per client IP. scope labels the limiter in
// logs and metrics and is part of the key, so scopes never share budgets.
func RateLimit(scope string, l Limiter, msg string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		ok, retryAfter := l.Allow(key)
		c.Header("X-RateLimit-Limit", strconv.Itoa(l.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(l.Remaining(key)))
		if !ok {
			metrics.RateLimitedTotal.WithLabelValues(scope).Inc()
			logger.WarnContext(c.Request.Context(), "Rate limit exceeded",
				slog.String("request_id", GetRequestID(c)),
				slog.String("scope", scope),
				slog.String("client_ip", c.ClientIP()),
			)
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			abortWithError(c, http.StatusTooManyRequests, msg)
			return
		}
		c.Next()
	}
}
