package middleware

import (
	"math"
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimit - HTTP middleware: общий token bucket на процесс, 429 при превышении.
// perSecond <= 0 отключает ограничение.
func RateLimit(perSecond float64) func(http.Handler) http.Handler {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	burst := int(math.Ceil(perSecond))
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, "Too many requests", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
