package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/smartcoffeehub/backend/internal/domain"
	"golang.org/x/time/rate"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"

	limiterIdleTTL = 10 * time.Minute
)

// CORSMiddleware handles CORS for the storefront
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		// Check if origin is allowed
		if isAllowedOrigin(origin, allowedOrigins) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Requested-With, X-Request-ID")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Handle preflight requests
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// isAllowedOrigin checks if the origin is in the allowed list
func isAllowedOrigin(origin string, allowedOrigins []string) bool {
	if origin == "" {
		return false
	}
	for _, allowed := range allowedOrigins {
		// Support trailing wildcards such as http://localhost:*
		if strings.HasSuffix(allowed, "*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(origin, prefix) {
				return true
			}
		} else if origin == allowed {
			return true
		}
	}
	return false
}

// RequestIDMiddleware propagates or assigns an X-Request-ID
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Request.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// LoggerMiddleware writes one structured access log line per request
func LoggerMiddleware(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
			slog.String("request_id", c.GetString(requestIDKey)),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}
		logger.LogAttrs(context.Background(), level, "http_request", attrs...)
	}
}

// RecoveryMiddleware recovers from panics
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.Recovery()
}

// RateLimitMiddleware limits each client IP to perMinute requests with the given burst.
// Limiters live in the cache and expire after a period of inactivity.
func RateLimitMiddleware(store domain.CacheRepository, perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 || store == nil {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	every := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		limiter := clientLimiter(c.Request.Context(), store, "ratelimit:"+c.ClientIP(), every, burst)
		if !limiter.Allow() {
			RateLimitedTotal.Inc()
			_ = c.Error(domain.ErrRateLimited)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, domain.ChatResponse{Reply: RateLimitedReply})
			return
		}
		c.Next()
	}
}

// clientLimiter fetches the limiter for key, creating it on first use.
// Concurrent first requests agree on one limiter through Add.
func clientLimiter(ctx context.Context, store domain.CacheRepository, key string, every rate.Limit, burst int) *rate.Limiter {
	if limiter, ok := storedLimiter(ctx, store, key); ok {
		_ = store.Set(ctx, key, limiter, limiterIdleTTL)
		return limiter
	}

	limiter := rate.NewLimiter(every, burst)
	if err := store.Add(ctx, key, limiter, limiterIdleTTL); errors.Is(err, domain.ErrCacheKeyExists) {
		if existing, ok := storedLimiter(ctx, store, key); ok {
			return existing
		}
	}
	return limiter
}

func storedLimiter(ctx context.Context, store domain.CacheRepository, key string) (*rate.Limiter, bool) {
	value, err := store.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	limiter, ok := value.(*rate.Limiter)
	return limiter, ok
}
