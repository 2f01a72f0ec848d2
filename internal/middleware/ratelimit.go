package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voice-task-uploader/pkg/response"
)

// loginRateLimiter throttles login attempts per client IP with auto-cleanup.
type loginRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newLoginRateLimiter(attemptsPerMin int) *loginRateLimiter {
	burst := attemptsPerMin / 2
	if burst < 1 {
		burst = 1
	}
	return &loginRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(attemptsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *loginRateLimiter) allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}

// LoginRateLimit throttles credential checks per client IP. A nil limiter
// (rate configured to 0) lets everything through.
func (m Middleware) LoginRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		if !m.limiter.allow(c.ClientIP()) {
			m.l.Warnf(c.Request.Context(), "login rate limit exceeded for %s", c.ClientIP())
			c.AbortWithStatusJSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many login attempts, slow down",
			})
			return
		}

		c.Next()
	}
}
