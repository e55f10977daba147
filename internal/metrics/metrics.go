package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saas_platform_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "saas_platform_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	flushes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saas_platform_unit_of_work_flushes_total",
		Help: "Count of SaveChanges calls by result",
	}, []string{"result"})

	rowsAffected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "saas_platform_unit_of_work_rows_affected_total",
		Help: "Rows written by successful flushes",
	})

	transactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saas_platform_unit_of_work_transactions_total",
		Help: "Explicit transactions by outcome",
	}, []string{"outcome"})

	changeEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "saas_platform_change_events_total",
		Help: "Entity change events published to the change feed",
	}, []string{"entity", "result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// HTTPRequests exposes the request counter for one label set.
func HTTPRequests(method, path, status string) prometheus.Counter {
	return httpRequestsTotal.WithLabelValues(method, path, status)
}

// ObserveFlush records a SaveChanges call and, on success, the rows it wrote.
func ObserveFlush(err error, rows int64) {
	if err != nil {
		flushes.WithLabelValues("error").Inc()
		return
	}
	flushes.WithLabelValues("ok").Inc()
	rowsAffected.Add(float64(rows))
}

// ObserveTransaction counts commit and rollback outcomes.
func ObserveTransaction(outcome string) {
	transactions.WithLabelValues(outcome).Inc()
}

func ObserveChangeEvent(entity, result string) {
	changeEvents.WithLabelValues(entity, result).Inc()
}
