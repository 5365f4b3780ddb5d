package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/unibrowser/internal/app/models/dto"
	"github.com/yigit/unibrowser/internal/pkg/logger"
	"github.com/yigit/unibrowser/internal/pkg/metrics"
	"golang.org/x/time/rate"
)

// idleClientTTL is how long an unused client bucket is kept
const idleClientTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP in front of the handlers
type RateLimiter struct {
	limit   rate.Limit
	burst   int
	metrics *metrics.Metrics

	mu        sync.Mutex
	clients   map[string]*clientLimiter
	lastSweep time.Time
	now       func() time.Time
}

// NewRateLimiter creates a rate limiter. A non-positive rate disables it.
func NewRateLimiter(requestsPerSecond float64, burst int, m *metrics.Metrics) *RateLimiter {
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limit:   rate.Limit(requestsPerSecond),
		burst:   burst,
		metrics: m,
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
	}
}

// allow takes a token from the bucket of one client, creating it on first use
func (rl *RateLimiter) allow(client string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) > idleClientTTL {
		for key, c := range rl.clients {
			if now.Sub(c.lastSeen) > idleClientTTL {
				delete(rl.clients, key)
			}
		}
		rl.lastSweep = now
	}

	c, ok := rl.clients[client]
	if !ok {
		c = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[client] = c
	}
	c.lastSeen = now
	return c.limiter.AllowN(now, 1)
}

// Clients returns the number of tracked client buckets
func (rl *RateLimiter) Clients() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return len(rl.clients)
}

// Limit rejects requests over a client's budget with 429
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 || rl.allow(c.ClientIP()) {
			c.Next()
			return
		}

		logger.Warn().
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Str("client_ip", c.ClientIP()).
			Msg("Rate limit exceeded")
		if rl.metrics != nil {
			rl.metrics.RateLimited.Inc()
		}

		c.Header("Retry-After", "1")
		c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.APIResponse{
			Error:     dto.NewErrorDetail(dto.ErrorCodeTooManyRequests, "Rate limit exceeded").WithSeverity(dto.ErrorSeverityWarning),
			Timestamp: time.Now(),
		})
	}
}
