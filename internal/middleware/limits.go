package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// clientLimiter tracks a token-bucket limiter per client IP
type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type limiterPool struct {
	mu      sync.Mutex
	clients map[string]*clientLimiter
	rpm     int
}

func newLimiterPool(requestsPerMinute int) *limiterPool {
	p := &limiterPool{
		clients: make(map[string]*clientLimiter),
		rpm:     requestsPerMinute,
	}
	go p.cleanup()
	return p
}

func (p *limiterPool) get(ip string) *rate.Limiter {
	p.mu.Lock()
	defer p.mu.Unlock()

	cl, ok := p.clients[ip]
	if !ok {
		cl = &clientLimiter{
			limiter: rate.NewLimiter(rate.Limit(float64(p.rpm)/60.0), p.rpm),
		}
		p.clients[ip] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter
}

// cleanup drops limiters for clients idle longer than 10 minutes
func (p *limiterPool) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		p.mu.Lock()
		for ip, cl := range p.clients {
			if time.Since(cl.lastSeen) > 10*time.Minute {
				delete(p.clients, ip)
			}
		}
		p.mu.Unlock()
	}
}

// RateLimit enforces a per-client request budget using in-process token
// buckets. Used when no Redis is configured; budgets are per instance.
func RateLimit(requestsPerMinute int) func(http.Handler) http.Handler {
	pool := newLimiterPool(requestsPerMinute)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !pool.get(clientIP(r)).Allow() {
				write429(w, "60")
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(requestsPerMinute))
			next.ServeHTTP(w, r)
		})
	}
}
