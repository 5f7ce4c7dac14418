package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	historyRepositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "history_repository",
		Name:      "operations_total",
		Help:      "Count of transaction history repository operations.",
	}, []string{"operation", "status"})
	historyRepositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "history_repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction history repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"operation", "status"})
)

// HistoryRepository tracks metrics for ClickHouse repository operations.
type HistoryRepository struct{}

// NewHistoryRepository creates a HistoryRepository metrics collector.
func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

// Observe records duration and status of a repository operation.
func (m HistoryRepository) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	historyRepositoryRequestsTotal.WithLabelValues(operation, status).Inc()
	historyRepositoryRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
