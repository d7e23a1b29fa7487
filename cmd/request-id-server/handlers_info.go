package main

import (
	"encoding/json"
	"io"
	"net/http"
	"runtime"
	"time"

	"github.com/arun0009/request-id-header/requestid"
)

// Health check handlers
func (s *server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(s.startTime).String(),
	})
}

func (s *server) readyHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
}

// sampleHandler answers with an empty 204, handy for checking the header alone.
func (s *server) sampleHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

// Server info handler
func (s *server) infoHandler(w http.ResponseWriter, r *http.Request) {
	var bodySize int
	if r.Body != nil {
		body, _ := io.ReadAll(io.LimitReader(r.Body, s.cfg.MaxBodySize))
		bodySize = len(body)
	}
	requestID, _ := requestid.FromContext(r.Context())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"timestamp":    time.Now(),
		"method":       r.Method,
		"url":          r.RequestURI,
		"path":         r.URL.Path,
		"query":        r.URL.Query(),
		"headers":      r.Header,
		"body_size":    bodySize,
		"remote_addr":  getClientIP(r),
		"user_agent":   r.UserAgent(),
		"content_type": r.Header.Get("Content-Type"),
		"protocol":     r.Proto,
		"tls":          r.TLS != nil,
		"request_id":   requestID,
		"request_ids":  requestid.IDs(r.Context()),
		"server": map[string]interface{}{
			"hostname":            s.cfg.Hostname,
			"version":             version,
			"go_version":          runtime.Version(),
			"platform":            runtime.GOOS + "/" + runtime.GOARCH,
			"start_time":          s.startTime,
			"uptime":              time.Since(s.startTime).String(),
			"request_count":       s.requestCounter.Load(),
			"request_id_header":   s.cfg.requestID().Header(),
			"unique_value_prefix": s.cfg.UniqueValuePrefix,
		},
	})
}
