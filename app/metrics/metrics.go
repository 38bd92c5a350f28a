// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"blogpress/app/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequestsTotal counts requests by route template, method and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogpress_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"route", "method", "status"})

	// HTTPRequestDuration records request latency by route template and method.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogpress_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	// PostOperationsTotal counts store operations by name and outcome kind.
	PostOperationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogpress_post_operations_total",
		Help: "Total number of post store operations by outcome",
	}, []string{"operation", "result"})

	// PanicsTotal counts recovered handler panics.
	PanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "blogpress_panics_total",
		Help: "Total number of recovered panics",
	})
)

// Operation names used as the operation label.
const (
	OpCreatePost = "create_post"
	OpUpdatePost = "update_post"
	OpDeletePost = "delete_post"
	OpAddComment = "add_comment"
)

// ObserveRequest records one finished request.
func ObserveRequest(route, method string, status int, start time.Time) {
	HTTPRequestsTotal.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(route, method).Observe(time.Since(start).Seconds())
}

// RecordOutcome counts a mutating operation by its outcome kind.
func RecordOutcome(operation string, outcome services.Outcome) {
	PostOperationsTotal.WithLabelValues(operation, string(outcome.Kind)).Inc()
}

// Handler serves the default registry.
func Handler() http.Handler {
	return promhttp.Handler()
}
