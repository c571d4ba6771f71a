package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saase/requesthub/internal/infrastructure/ratelimit"
	"github.com/saase/requesthub/internal/shared/errors"
	"github.com/saase/requesthub/internal/shared/logger"
	"github.com/saase/requesthub/internal/shared/utils"
)

// RateLimiter limits requests per client IP. A nil limiter or a disabled
// policy lets everything through.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	policy  ratelimit.Policy
	prefix  string
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, policy ratelimit.Policy, prefix string, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		policy:  policy,
		prefix:  prefix,
		logger:  log,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl == nil || rl.limiter == nil || !rl.policy.Enabled() {
			c.Next()
			return
		}

		key := rl.prefix + ":" + c.ClientIP()
		allowed, err := rl.limiter.Allow(c.Request.Context(), key, rl.policy)
		if err != nil {
			// If Redis is unavailable, allow the request to avoid blocking all traffic
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.policy.Window.Seconds())))
			utils.ErrorResponseWithError(c, errors.NewRateLimitedError("rate limit exceeded, please try again later"))
			c.Abort()
			return
		}

		c.Next()
	}
}
