package middleware

import (
	"net/http"
	"strconv"

	"github.com/placemint/placemint/internal/logger"
	"github.com/placemint/placemint/internal/ratelimit"
)

// RedisRateLimit enforces a per-client request budget shared across
// instances via the Redis-backed manager. A nil manager no-ops so the
// router wiring stays the same with or without Redis.
func RedisRateLimit(m *ratelimit.Manager, requestsPerMinute int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m == nil {
				next.ServeHTTP(w, r)
				return
			}

			allowed, reset, err := m.CheckRate(r.Context(), clientIP(r), requestsPerMinute)
			if err != nil {
				// Fail open: a Redis outage should not take scoring down
				logger.WithContext(r.Context()).Warn("Rate limit check failed", "error", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				write429(w, strconv.Itoa(reset))
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(requestsPerMinute))
			next.ServeHTTP(w, r)
		})
	}
}
