package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors shared by the analysis surfaces.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the Espalier collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "espalier",
			Name:      "analysis_requests_total",
			Help:      "Analysis operations served, by operation and status.",
		}, []string{"operation", "status"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "espalier",
			Name:      "analysis_duration_seconds",
			Help:      "Time spent computing analysis results, by operation.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
}

// Observe records one completed operation.
func (m *Metrics) Observe(operation, status string, elapsed time.Duration) {
	m.Requests.WithLabelValues(operation, status).Inc()
	m.Duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}
