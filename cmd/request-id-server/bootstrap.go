package main

import (
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const version = "1.0.0"

// server carries everything the handlers need. It is built once by newServer
// and not modified afterwards, apart from the request counter.
type server struct {
	cfg            Config
	logger         *zap.Logger
	registry       *prometheus.Registry
	metrics        *metrics
	limiter        *rate.Limiter
	upgrader       websocket.Upgrader
	startTime      time.Time
	requestCounter atomic.Uint64
}

func newServer(cfg Config, logger *zap.Logger) *server {
	registry := prometheus.NewRegistry()
	s := &server{
		cfg:       cfg,
		logger:    logger,
		registry:  registry,
		metrics:   newMetrics(registry),
		startTime: time.Now(),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	return s
}
