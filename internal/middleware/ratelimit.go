package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Admitra/internal/dto"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

// RateLimiter applies a per-client-IP request budget to the verification and
// attempt-creation endpoints, blunting brute-force enumeration of the roster.
// A token bucket only consumes budget on allowed requests, so rejections do
// not count against the window they are rejected from.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	limit   rate.Limit
	burst   int
	window  time.Duration
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// NewRateLimiter allows `requests` per `window` per client IP.
func NewRateLimiter(requests int, window time.Duration) *RateLimiter {
	if requests < 1 {
		requests = 1
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		clients: make(map[string]*clientLimiter),
		limit:   rate.Every(window / time.Duration(requests)),
		burst:   requests,
		window:  window,
	}
}

// Allow reports whether the given client has budget left.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	client, ok := rl.clients[clientIP]
	if !ok {
		client = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.clients[clientIP] = client
	}
	client.lastSeen = now

	// Evict idle clients so the map stays bounded by active traffic.
	for ip, c := range rl.clients {
		if now.Sub(c.lastSeen) > 3*rl.window {
			delete(rl.clients, ip)
		}
	}

	return client.limiter.Allow()
}

// Middleware rejects over-budget requests with 429 before they reach the
// handler.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !rl.Allow(ip) {
			log.Warn().Str("client_ip", ip).Str("path", c.FullPath()).Msg("Rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{Error: "too many requests, retry later"})
			return
		}
		c.Next()
	}
}
