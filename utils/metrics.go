package utils

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP metrics
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_response_size_bytes",
			Help:    "Size of HTTP responses",
			Buckets: prometheus.ExponentialBuckets(100, 10, 8),
		},
		[]string{"method", "path"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Current number of active HTTP requests",
		},
	)

	// Database metrics
	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_operation_duration_seconds",
			Help:    "Duration of database operations",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation", "collection"},
	)

	// Domain metrics
	TodoOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todo_operations_total",
			Help: "Total number of todo operations",
		},
		[]string{"operation"}, // add, toggle, delete, seed
	)

	CoachQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coach_queries_total",
			Help: "Total number of retrieval chat queries",
		},
		[]string{"outcome"}, // answered, refused
	)

	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "suggestions_total",
			Help: "Total number of suggestion transitions",
		},
		[]string{"transition"}, // applied, dismissed
	)

	JourneyStagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "journey_stages_total",
			Help: "Total number of journey stage executions",
		},
		[]string{"stage"},
	)

	// Authentication metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"status", "type"}, // success/failure, login/refresh/2fa
	)

	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions_total",
			Help: "Total number of active sessions",
		},
	)

	// Cache metrics
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "result"}, // hit/miss
	)

	// Error metrics
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "errors_total",
			Help: "Total number of errors by type",
		},
		[]string{"type", "reason"},
	)

	// System metrics
	SystemCPUUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_cpu_usage_percent",
			Help: "Current CPU usage percentage",
		},
	)

	SystemMemoryUsage = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "system_memory_usage_percent",
			Help: "Current memory usage percentage",
		},
	)
)

// TrackDBOperation times one database operation; stop it with ObserveDuration.
func TrackDBOperation(operation, collection string) *prometheus.Timer {
	return prometheus.NewTimer(DBOperationDuration.WithLabelValues(operation, collection))
}

func TrackTodoOperation(operation string) {
	TodoOperationsTotal.WithLabelValues(operation).Inc()
}

func TrackCoachQuery(outcome string) {
	CoachQueriesTotal.WithLabelValues(outcome).Inc()
}

func TrackSuggestion(transition string) {
	SuggestionsTotal.WithLabelValues(transition).Inc()
}

func TrackJourneyStage(stage string) {
	JourneyStagesTotal.WithLabelValues(stage).Inc()
}

func TrackAuthAttempt(status, authType string) {
	AuthAttempts.WithLabelValues(status, authType).Inc()
}

func TrackCacheOperation(cache string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	CacheOperationsTotal.WithLabelValues(cache, result).Inc()
}

func TrackError(errorType, reason string) {
	ErrorsTotal.WithLabelValues(errorType, reason).Inc()
}
