package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const visitorTTL = 10 * time.Minute

type visitor struct {
	bucket *rate.Limiter
	seen   time.Time
}

type visitorTable struct {
	mu    sync.Mutex
	perIP map[string]*visitor
	limit rate.Limit
	burst int
}

func (t *visitorTable) get(ip string) *rate.Limiter {
	t.mu.Lock()
	defer t.mu.Unlock()
	v, ok := t.perIP[ip]
	if !ok {
		v = &visitor{bucket: rate.NewLimiter(t.limit, t.burst)}
		t.perIP[ip] = v
	}
	v.seen = time.Now()
	return v.bucket
}

func (t *visitorTable) prune() {
	t.mu.Lock()
	defer t.mu.Unlock()
	cutoff := time.Now().Add(-visitorTTL)
	for ip, v := range t.perIP {
		if v.seen.Before(cutoff) {
			delete(t.perIP, ip)
		}
	}
}

// RateLimit applies a per-client-IP token bucket with the given refill
// rate and burst. Idle clients are forgotten after visitorTTL.
func RateLimit(r rate.Limit, b int) gin.HandlerFunc {
	table := &visitorTable{perIP: make(map[string]*visitor), limit: r, burst: b}

	go func() {
		for range time.Tick(visitorTTL / 2) {
			table.prune()
		}
	}()

	return func(c *gin.Context) {
		if !table.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "请求过于频繁"})
			return
		}
		c.Next()
	}
}
