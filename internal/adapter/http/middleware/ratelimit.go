package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "lnpos-gateway/internal/adapter/storage/redis"
	"lnpos-gateway/pkg/apperror"
	"lnpos-gateway/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Endpoint groups sharing a rate limit budget.
const (
	GroupLnurl = "lnurl"
	GroupPin   = "pin"
	GroupAdmin = "admin"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the limits per endpoint group. A positive
// lnurlLimit overrides the LNURL budget, which is the one operators tune.
func DefaultRateLimitRules(lnurlLimit int, lnurlWindow time.Duration) map[string]RateLimitRule {
	rules := map[string]RateLimitRule{
		GroupLnurl: {Limit: 60, Window: time.Minute},
		GroupPin:   {Limit: 30, Window: time.Minute},
		GroupAdmin: {Limit: 120, Window: time.Minute},
	}
	if lnurlLimit > 0 && lnurlWindow > 0 {
		rules[GroupLnurl] = RateLimitRule{Limit: int64(lnurlLimit), Window: lnurlWindow}
	}
	return rules
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// LNURL groups are keyed by client IP, admin routes by token subject.
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
			if group == GroupLnurl {
				response.LnurlError(c, apperror.ErrRateLimitExceeded())
			} else {
				response.Error(c, apperror.ErrRateLimitExceeded())
			}
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier determines the rate limit key source.
func extractIdentifier(c *gin.Context) string {
	if caller, ok := CallerFrom(c); ok && caller.Subject != "" {
		return "sub:" + caller.Subject
	}
	return "ip:" + c.ClientIP()
}
