package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// API metrics
var (
	// estimateRequests counts served point-in-time estimates
	estimateRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rediscalc_estimate_requests_total",
			Help: "Total number of estimate requests served",
		},
	)

	// simulateRequests counts served memory projections
	simulateRequests = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rediscalc_simulate_requests_total",
			Help: "Total number of simulate requests served",
		},
	)

	// invalidInputs counts requests rejected for out-of-domain parameters
	invalidInputs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "rediscalc_invalid_inputs_total",
			Help: "Total number of requests rejected for invalid input",
		},
	)

	// requestDuration tracks handler latency per endpoint
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "rediscalc_request_duration_seconds",
			Help:    "Request handling duration per endpoint",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)
)
