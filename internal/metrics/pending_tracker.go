package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pendingTrackerPassesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "pending_tracker",
		Name:      "operations_total",
		Help:      "Count of pending tracker passes.",
	}, []string{"operation", "status"})
	pendingTrackerPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "pending_tracker",
		Name:      "operation_duration_seconds",
		Help:      "Duration of pending tracker passes.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
	}, []string{"operation", "status"})
)

// PendingTracker tracks metrics for the pending transaction tracker.
type PendingTracker struct{}

// NewPendingTracker creates a PendingTracker metrics collector.
func NewPendingTracker() *PendingTracker {
	return &PendingTracker{}
}

// Observe records duration and status of a tracker phase.
func (m PendingTracker) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	pendingTrackerPassesTotal.WithLabelValues(operation, status).Inc()
	pendingTrackerPassDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
