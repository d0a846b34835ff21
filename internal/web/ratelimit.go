package web

import (
	"net/http"

	"golang.org/x/time/rate"
)

// newRenderLimiter returns nil (no limit) when perSecond is not positive.
func newRenderLimiter(perSecond float64, burst int) *rate.Limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(perSecond), burst)
}

// withRenderLimit rejects requests beyond the limiter's budget with 429.
// Rendering a large canvas is CPU bound, so the budget is shared by all clients.
func withRenderLimit(limiter *rate.Limiter, next http.HandlerFunc) http.HandlerFunc {
	if limiter == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			writeAPIError(w, http.StatusTooManyRequests, "rate_limited", "too many render requests")
			return
		}
		next(w, r)
	}
}
