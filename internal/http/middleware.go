package http

import (
	"net"
	"net/http"

	rl "github.com/fridgewatch/fridgewatch/internal/http/rate_limiter"
)

// RateLimitMiddleware throttles clients by IP with a per-visitor token
// bucket. Clients over the limit get 429.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}

		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, r)
	})
}
