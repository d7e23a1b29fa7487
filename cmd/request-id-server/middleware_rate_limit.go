package main

import "net/http"

// rateLimitMiddleware enforces a global rate limiter, skipping the websocket path.
func (s *server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/ws" {
			next.ServeHTTP(w, r)
			return
		}
		if !s.limiter.Allow() {
			// Set headers before writing status/body
			w.Header().Set("Retry-After", "60")
			http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
			s.metrics.rateLimited.Inc()
			return
		}
		next.ServeHTTP(w, r)
	})
}
