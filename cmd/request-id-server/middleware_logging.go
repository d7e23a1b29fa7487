package main

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/arun0009/request-id-header/requestid"
)

// loggingMiddleware logs requests with their request ID and records Prometheus metrics.
func (s *server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)

		if s.cfg.LogRequests {
			requestID, _ := requestid.FromContext(r.Context())
			s.logger.Info("request",
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", rw.statusCode),
				zap.Duration("duration", duration),
				zap.String("remote_addr", r.RemoteAddr),
			)
		}

		s.metrics.requestLatency.Observe(duration.Seconds())
		s.metrics.requestTotal.WithLabelValues(r.Method, strconv.Itoa(rw.statusCode)).Inc()
	})
}
