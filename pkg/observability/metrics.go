package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gatewayRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gateway_requests_total",
			Help: "Total number of requests sent to the payment gateway",
		},
		[]string{"operation", "status"},
	)

	gatewayRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gateway_request_duration_seconds",
			Help:    "Duration of payment gateway requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	gatewayRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "gateway_requests_in_flight",
			Help: "Number of payment gateway requests currently being processed",
		},
	)
)

// TrackGatewayRequest marks the start of a gateway call and returns a
// completion func that records duration and outcome. Call it exactly once.
func TrackGatewayRequest(operation string) func(status string) {
	start := time.Now()
	gatewayRequestsInFlight.Inc()

	return func(status string) {
		gatewayRequestsInFlight.Dec()
		gatewayRequestDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
		gatewayRequestsTotal.WithLabelValues(operation, status).Inc()
	}
}
