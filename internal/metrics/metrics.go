package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Search Metrics
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kobis_search_requests_total",
			Help: "Total number of catalog searches by sort order and outcome",
		},
		[]string{"sort_order", "outcome"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kobis_search_duration_seconds",
			Help:    "Duration of catalog searches (fetch and count) in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"sort_order"},
	)

	SearchErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kobis_search_errors_total",
			Help: "Total number of failed catalog searches by error kind",
		},
		[]string{"error_kind"}, // "store_unavailable", "query_failed"
	)

	SearchResultTotal = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "kobis_search_result_total",
			Help:    "Distribution of total matching movies per search",
			Buckets: []float64{0, 1, 10, 100, 1000, 10000, 100000},
		},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kobis_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "kobis_api_request_duration_seconds",
			Help:    "Duration of API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordSearch records one search. An empty errorKind marks a success.
func RecordSearch(sortOrder string, duration time.Duration, total int64, errorKind string) {
	SearchDuration.WithLabelValues(sortOrder).Observe(duration.Seconds())
	if errorKind != "" {
		SearchRequestsTotal.WithLabelValues(sortOrder, "error").Inc()
		SearchErrors.WithLabelValues(errorKind).Inc()
		return
	}
	SearchRequestsTotal.WithLabelValues(sortOrder, "success").Inc()
	SearchResultTotal.Observe(float64(total))
}

func RecordAPIRequest(method, route string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
