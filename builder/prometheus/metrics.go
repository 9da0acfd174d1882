package prometheus

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	HttpPanicsTotal   prometheus.Counter

	initOnce sync.Once
)

// InitMetrics registers the provider metrics with the default registry. Safe to call more than once.
func InitMetrics() {
	initOnce.Do(func() {
		OperationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "membership_operations_total",
			Help: "Number of membership lifecycle operations by action and outcome",
		}, []string{"action", "status", "error_code"})
		OperationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "membership_operation_duration_seconds",
			Help:    "Duration of membership lifecycle operations",
			Buckets: prometheus.DefBuckets,
		}, []string{"action"})
		HttpPanicsTotal = prometheus.NewCounter(prometheus.CounterOpts{
			Name: "membership_http_panics_total",
			Help: "Number of panics recovered while serving http requests",
		})
		prometheus.MustRegister(OperationsTotal, OperationDuration, HttpPanicsTotal)
	})
}

func ObserveOperation(action, status, errorCode string, seconds float64) {
	if OperationsTotal == nil {
		return
	}
	OperationsTotal.WithLabelValues(action, status, errorCode).Inc()
	OperationDuration.WithLabelValues(action).Observe(seconds)
}
