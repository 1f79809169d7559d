package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/mag7pulse/internal/domain/dto"
)

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// limiter is a fixed-window counter per client IP. Clients whose window has
// expired are pruned at most once per window.
type limiter struct {
	limit  int
	window time.Duration

	mu        sync.Mutex
	clients   map[string]*client
	lastSweep time.Time
}

func newLimiter(limit int, window time.Duration) *limiter {
	return &limiter{limit: limit, window: window, clients: make(map[string]*client)}
}

// allow counts one request from ip at now and reports whether it is within the limit.
func (l *limiter) allow(ip string, now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > l.window {
		for k, cl := range l.clients {
			if now.Sub(cl.windowStart) > l.window {
				delete(l.clients, k)
			}
		}
		l.lastSweep = now
	}

	cl, ok := l.clients[ip]
	if !ok || now.Sub(cl.windowStart) > l.window {
		cl = &client{windowStart: now}
		l.clients[ip] = cl
	}
	cl.count++
	return cl.count <= l.limit
}

func (l *limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.clients)
}

// RateLimiter is an in-memory middleware that limits the number of requests
// per client IP to limit per window. A limit <= 0 disables limiting.
//
// Each call returns an independent limiter with its own client table.
//
// Response when limit exceeded:
//
//	HTTP/1.1 429 Too Many Requests
//	{ "message": "rate limit exceeded", ... }
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	l := newLimiter(limit, window)

	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		if !l.allow(c.ClientIP(), time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse("rate limit exceeded", nil))
			return
		}

		c.Next()
	}
}
