package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the application.
// It includes counters for HTTP requests, created tasks, notification
// outcomes, and new users, and a histogram for database query durations.
type Metrics struct {
	HTTPRequests    *prometheus.CounterVec   // Counter for handled HTTP requests
	TasksCreated    prometheus.Counter       // Counter for created task records
	Notifications   *prometheus.CounterVec   // Counter for notification attempts by outcome
	NewUsers        prometheus.Counter       // Counter for newly registered employees
	DBQueryDuration *prometheus.HistogramVec // Histogram for database query durations
}

// NewMetrics creates a new Metrics instance with the provided Prometheus Registerer.
//
// Parameters:
//   - reg: A Prometheus Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "restobot_http_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"path", "status"}),
		TasksCreated: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "restobot_tasks_created_total",
			Help: "Total number of created task records",
		}),
		Notifications: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "restobot_notifications_total",
			Help: "Total number of notification attempts by outcome",
		}, []string{"status"}), // status: sent, skipped, failed, dropped
		NewUsers: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "restobot_new_users_total",
			Help: "Total number of newly registered employees",
		}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "restobot_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: 'check_account', 'create_task'
	}
}
