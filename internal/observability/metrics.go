package observability

import (
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	protocolRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentald",
			Subsystem: "protocol",
			Name:      "requests_total",
			Help:      "Total protocol requests dispatched.",
		},
		[]string{"action", "table", "status"},
	)
	protocolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rentald",
			Subsystem: "protocol",
			Name:      "request_duration_seconds",
			Help:      "Protocol request dispatch duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"action", "table", "status"},
	)
	activeSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "rentald",
			Subsystem: "protocol",
			Name:      "active_sessions",
			Help:      "Currently connected protocol sessions.",
		},
	)
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "rentald",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total admin HTTP requests.",
		},
		[]string{"method", "path", "status"},
	)
	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "rentald",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Admin HTTP request duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			protocolRequests, protocolDuration, activeSessions,
			httpRequests, httpDuration,
		)
	})
}

func RecordRequest(action, table, status string, duration time.Duration) {
	RegisterMetrics()
	protocolRequests.WithLabelValues(action, table, status).Inc()
	protocolDuration.WithLabelValues(action, table, status).Observe(duration.Seconds())
}

func SessionOpened() {
	RegisterMetrics()
	activeSessions.Inc()
}

func SessionClosed() {
	RegisterMetrics()
	activeSessions.Dec()
}

func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	RegisterMetrics()
	statusLabel := strconv.Itoa(status)
	httpRequests.WithLabelValues(method, path, statusLabel).Inc()
	httpDuration.WithLabelValues(method, path, statusLabel).Observe(duration.Seconds())
}
