package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/arun0009/request-id-header/requestid"
)

type metrics struct {
	requestTotal    *prometheus.CounterVec
	requestLatency  prometheus.Histogram
	reconciliations *prometheus.CounterVec
	rateLimited     prometheus.Counter
}

// newMetrics creates the server collectors and registers them with reg.
func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "request_id_http_requests_total",
				Help: "Total number of requests processed",
			},
			[]string{"method", "status"},
		),
		requestLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "request_id_http_request_duration_seconds",
				Help:    "Request latency in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 15), // ~1ms to ~16s
			},
		),
		reconciliations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "request_id_reconciliations_total",
				Help: "Request ID header reconciliations by outcome",
			},
			[]string{"outcome"},
		),
		rateLimited: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "request_id_rate_limited_total",
				Help: "Total number of requests rejected by the rate limiter",
			},
		),
	}
	reg.MustRegister(m.requestTotal, m.requestLatency, m.reconciliations, m.rateLimited)
	return m
}

func (m *metrics) observeReconciliation(_ *http.Request, res requestid.Result) {
	m.reconciliations.WithLabelValues(res.Outcome.String()).Inc()
}
