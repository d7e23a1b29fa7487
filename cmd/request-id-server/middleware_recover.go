package main

import (
	"net/http"

	"go.uber.org/zap"
)

// recoverMiddleware turns handler panics into 500 responses.
func (s *server) recoverMiddleware(next http.Handler) http.Handler {
	header := s.cfg.requestID().Header()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			s.logger.Error("panic recovered",
				zap.Any("error", rec),
				zap.String("request_id", w.Header().Get(header)),
				zap.String("path", r.URL.Path),
			)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}
