package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	transactionsServiceRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "walletcore",
		Subsystem: "transactions_service",
		Name:      "operations_total",
		Help:      "Count of transaction service operations.",
	}, []string{"operation", "status"})
	transactionsServiceRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "walletcore",
		Subsystem: "transactions_service",
		Name:      "operation_duration_seconds",
		Help:      "Duration of transaction service operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "status"})
)

// TransactionsService tracks metrics for the transaction façade.
type TransactionsService struct{}

// NewTransactionsService creates a TransactionsService metrics collector.
func NewTransactionsService() *TransactionsService {
	return &TransactionsService{}
}

// Observe records duration and status of a service operation.
func (m TransactionsService) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	transactionsServiceRequestsTotal.WithLabelValues(operation, status).Inc()
	transactionsServiceRequestDuration.WithLabelValues(operation, status).Observe(time.Since(started).Seconds())
}
