package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "movies2_http_requests_total",
			Help: "Count of HTTP requests by method, path and status",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "movies2_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	LibrarySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "movies2_library_size",
			Help: "Number of movies currently held in the in-memory store after bulk load",
		},
	)

	CSVRowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movies2_csv_rows_skipped_total",
			Help: "Count of malformed dataset rows skipped during bulk load",
		},
	)

	SignupParseFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "movies2_signup_parse_failures_total",
			Help: "Count of sign-up requests the extraction service failed to parse",
		},
	)
)
