package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"impulse-vlsi-backend/internal/delivery/http/response"
	"impulse-vlsi-backend/internal/domain"
	"impulse-vlsi-backend/pkg/metrics"
	"impulse-vlsi-backend/pkg/ratelimit"
	"impulse-vlsi-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

const RateLimitMessage = "Too many requests. Please try again later."

// RateLimitConfig holds configuration for one form's rate limiting
type RateLimitConfig struct {
	Form    domain.FormKind
	Limiter ratelimit.Limiter
	// Custom key extractor (default: ClientIdentity)
	KeyFunc func(*gin.Context) string
	Logger  *security.SecurityLogger
	// Clock for Retry-After (default: time.Now)
	Now func() time.Time
}

// ClientIdentity derives the rate-limit identity: first X-Forwarded-For value,
// then the connection address host, then "unknown".
func ClientIdentity(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	if addr := strings.TrimSpace(c.Request.RemoteAddr); addr != "" {
		if host, _, err := net.SplitHostPort(addr); err == nil && host != "" {
			return host
		}
		return addr
	}

	return "unknown"
}

// RateLimitMiddleware rejects requests over the form's threshold with 429.
// Store failures are logged and the request is let through.
func RateLimitMiddleware(config RateLimitConfig) gin.HandlerFunc {
	if config.KeyFunc == nil {
		config.KeyFunc = ClientIdentity
	}
	if config.Logger == nil {
		config.Logger = security.DefaultLogger()
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	return func(c *gin.Context) {
		identity := config.KeyFunc(c)
		c.Set(string(domain.KeyClientID), identity)

		result, err := config.Limiter.Allow(c.Request.Context(), identity)
		if err != nil {
			config.Logger.LogRateLimitStoreError(c.Request.Context(), identity, c.GetString(string(domain.KeyRequestID)), c.FullPath(), err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining()))
		c.Header("X-RateLimit-Reset", result.ResetAt.UTC().Format(time.RFC3339))

		if !result.Allowed {
			retryAfter := int(result.ResetAt.Sub(config.Now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			metrics.FormRateLimited.WithLabelValues(string(config.Form)).Inc()
			config.Logger.LogRateLimitTriggered(
				c.Request.Context(),
				identity,
				c.GetHeader("User-Agent"),
				c.GetString(string(domain.KeyRequestID)),
				c.FullPath(),
				result.Count,
				result.Limit,
			)

			response.Error(c, http.StatusTooManyRequests, RateLimitMessage, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
