package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	nodeClientRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "node_client",
		Name:      "operations_total",
		Help:      "Count of wallet node API calls.",
	}, []string{"operation", "status"})
	nodeClientRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "node_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of wallet node API calls.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// NodeClient tracks metrics for calls against the wallet node API.
type NodeClient struct{}

// NewNodeClient constructs a metrics collector for node API calls.
func NewNodeClient() *NodeClient {
	return &NodeClient{}
}

// Observe records a single node API call outcome and duration.
func (m NodeClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	nodeClientRequestsTotal.WithLabelValues(operation, status).Inc()
	nodeClientRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
