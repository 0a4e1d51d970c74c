package middleware

import (
	"net/http"

	"golang.org/x/time/rate"
)

// NewRateLimiter returns a middleware that applies a process-wide token
// bucket to the wrapped routes. It protects the external lookup API quota,
// not individual clients, so one shared limiter is enough. Requests over
// the limit get 429 Too Many Requests.
func NewRateLimiter(rps float64, burst int) func(http.Handler) http.Handler {
	if rps <= 0 {
		rps = 5
	}
	if burst <= 0 {
		burst = 10
	}
	limiter := rate.NewLimiter(rate.Limit(rps), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
