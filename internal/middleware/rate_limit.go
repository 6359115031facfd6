package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/quillcms/quill-backend/internal/common"
	"github.com/quillcms/quill-backend/pkg/cache"
)

// RateLimitConfig configures the rate limiter
type RateLimitConfig struct {
	RequestsPerMinute int
	KeyPrefix         string
}

// DefaultRateLimitConfig returns default rate limit configuration
func DefaultRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerMinute: 120,
		KeyPrefix:         "api:ratelimit:",
	}
}

// RateLimit limits requests per client IP using a shared fixed-window
// counter, so the window is consistent across horizontally scaled
// instances. Fails open on counter errors.
func RateLimit(counter cache.Counter, cfg RateLimitConfig) gin.HandlerFunc {
	window := time.Minute

	return func(c *gin.Context) {
		if counter == nil {
			c.Next()
			return
		}

		key := cfg.KeyPrefix + c.ClientIP()
		count, resetAt, err := counter.Incr(c.Request.Context(), key, window)
		if err != nil {
			c.Next()
			return
		}

		remaining := int64(cfg.RequestsPerMinute) - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.RequestsPerMinute))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))

		if count > int64(cfg.RequestsPerMinute) {
			retryAfter := int64(time.Until(resetAt).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", resetAt.Unix()))
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			common.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, try again later", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
