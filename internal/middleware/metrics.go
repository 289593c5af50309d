package middleware

import (
	"net/http"

	"chirpy/internal/metrics"
)

// CountHits increments the fileserver hit counter for every request that
// passes through it.
func CountHits(counter *metrics.Counter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			counter.Inc()
			next.ServeHTTP(w, r)
		})
	}
}
