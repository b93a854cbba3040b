package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiter tracks a token bucket per client IP. Stale entries are
// swept during allow, at most once per sweepEvery, so the map does not grow
// without bound and no goroutine outlives a discarded router.
type clientLimiter struct {
	mu        sync.Mutex
	clients   map[string]*clientEntry
	rps       rate.Limit
	burst     int
	lastSeen  time.Duration
	nextSweep time.Time
}

type clientEntry struct {
	limiter *rate.Limiter
	seen    time.Time
}

const sweepEvery = time.Minute

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		clients:  make(map[string]*clientEntry),
		rps:      rate.Limit(rps),
		burst:    burst,
		lastSeen: 5 * time.Minute,
	}
}

func (l *clientLimiter) allow(ip string) bool {
	now := time.Now()

	l.mu.Lock()
	if now.After(l.nextSweep) {
		for k, entry := range l.clients {
			if now.Sub(entry.seen) > l.lastSeen {
				delete(l.clients, k)
			}
		}
		l.nextSweep = now.Add(sweepEvery)
	}

	entry, ok := l.clients[ip]
	if !ok {
		entry = &clientEntry{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = entry
	}
	entry.seen = now
	l.mu.Unlock()

	return entry.limiter.Allow()
}

// RateLimit rejects requests exceeding the per-IP token bucket with 429.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiter := newClientLimiter(rps, burst)
	return func(c *gin.Context) {
		if !limiter.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
