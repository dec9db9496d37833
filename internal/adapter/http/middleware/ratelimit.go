package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "kyc-webhook-simulator/internal/adapter/storage/redis"
	"kyc-webhook-simulator/pkg/apperror"
	"kyc-webhook-simulator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the rate limits per endpoint group.
// Inbound webhook endpoints get a generous per-provider budget since
// a single simulation burst can fan out many deliveries; the control
// plane endpoints are tighter.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"webhooks":            {Limit: 300, Window: time.Minute},
		"simulation_schedule": {Limit: 60, Window: time.Minute},
		"simulation_admin":    {Limit: 120, Window: time.Minute},
		"events":              {Limit: 120, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		identifier := extractIdentifier(c)
		key := fmt.Sprintf("%s:%s", identifier, group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		// Always set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source. Webhook
// endpoints carry the provider in the path, so each provider gets
// its own counter per client address.
func extractIdentifier(c *gin.Context) string {
	if provider := c.Param("provider"); provider != "" {
		return fmt.Sprintf("%s:%s", c.ClientIP(), provider)
	}
	return c.ClientIP()
}
