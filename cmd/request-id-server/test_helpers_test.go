package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// newTestServer returns a server with test defaults and a log observer.
func newTestServer(t *testing.T, opts ...func(*Config)) (*server, *observer.ObservedLogs) {
	t.Helper()
	cfg := Config{
		Port:              "8080",
		EnableCORS:        true,
		LogRequests:       true,
		LogLevel:          "debug",
		MaxBodySize:       10485760,
		HeaderName:        "X-Request-ID",
		UniqueValuePrefix: "TEST-",
		Hostname:          "test-host",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	core, logs := observer.New(zapcore.DebugLevel)
	return newServer(cfg, zap.New(core)), logs
}

// do sends a request through the full handler chain.
func do(h http.Handler, method, path string, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
