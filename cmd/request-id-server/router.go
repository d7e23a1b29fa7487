package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/arun0009/request-id-header/requestid"
)

// routes configures all HTTP routes and middleware for the server.
//
// The request ID middleware wraps the router rather than being registered
// with router.Use, so unmatched routes get the header too. Recovery sits
// outside it and writes panic responses through the stamped writer.
func (s *server) routes() http.Handler {
	router := mux.NewRouter()

	router.Use(s.loggingMiddleware)
	router.Use(s.corsMiddleware)
	if s.limiter != nil {
		router.Use(s.rateLimitMiddleware)
	}

	// Health check endpoints
	router.HandleFunc("/health", s.healthHandler).Methods("GET")
	router.HandleFunc("/ready", s.readyHandler).Methods("GET")

	router.HandleFunc("/info", s.infoHandler).Methods("GET")
	router.HandleFunc("/sample", s.sampleHandler).Methods("GET")
	router.HandleFunc("/ws", s.websocketHandler)

	router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	// Everything else is pure echo with testing features
	router.PathPrefix("/").HandlerFunc(s.echoHandler)

	withID := requestid.Middleware(s.cfg.requestID(), requestid.WithObserver(s.metrics.observeReconciliation))
	return s.recoverMiddleware(withID(router))
}
