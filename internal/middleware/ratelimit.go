package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hackfest/api/internal/metrics"
	"github.com/hackfest/api/internal/ratelimit"
)

// clientKey identifies the caller for rate limiting. Behind a proxy the
// first X-Forwarded-For entry is the original client.
func clientKey(c *gin.Context) string {
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		if first, _, found := strings.Cut(fwd, ","); found || first != "" {
			return strings.TrimSpace(first)
		}
	}
	return c.ClientIP()
}

// RateGuard returns a middleware that throttles requests per client.
// Limiter failures are logged and the request is allowed through; the
// guard must never take the endpoint down with it.
func RateGuard(limiter ratelimit.Limiter, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)

		decision, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			logger.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		switch decision {
		case ratelimit.Allowed:
			c.Next()
		case ratelimit.DeniedTooFrequent:
			metrics.RateLimited.WithLabelValues("frequency").Inc()
			tooManyRequests(c, "RATE_LIMITED_FREQUENCY", "please wait before trying again")
		case ratelimit.DeniedQuotaExhausted:
			metrics.RateLimited.WithLabelValues("quota").Inc()
			tooManyRequests(c, "RATE_LIMITED_QUOTA", "too many attempts, try again later")
		default:
			c.Next()
		}
	}
}

func tooManyRequests(c *gin.Context, code, message string) {
	resp := struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.AbortWithStatusJSON(http.StatusTooManyRequests, resp)
}
