// Package httpapi: cross-cutting request middleware.

package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// requestIDHeader carries the per-request correlation ID both ways.
const requestIDHeader = "X-Request-ID"

// ctxKeyRequestID is the gin context key the logger middleware reads.
const ctxKeyRequestID = "request_id"

// requestID adopts the caller's X-Request-ID or mints a fresh UUID, and
// echoes it on the response so clients can correlate.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ctxKeyRequestID, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// requestLogger emits one structured line per request after the handler
// chain finishes.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request",
			"request_id", c.GetString(ctxKeyRequestID),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}

// rateLimit gates the mutating routes behind one shared token bucket.
// Zero rps disables the gate entirely.
func rateLimit(rps float64, burst int) gin.HandlerFunc {
	if rps <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests,
				gin.H{"error": "rate limit exceeded; retry shortly"})

			return
		}
		c.Next()
	}
}
