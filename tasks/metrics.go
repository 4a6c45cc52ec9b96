package tasks

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace = "tabfunc"
	metricsSubsystem = "tasks"
)

// Metrics counts harness activity.
type Metrics struct {
	Generated  prometheus.Counter
	Integrated prometheus.Counter
	Failed     prometheus.Counter
	Seconds    prometheus.Histogram
}

// NewMetrics builds the harness metrics and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Generated: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "generated_total",
			Help:      "Tasks produced by the generator.",
		}),
		Integrated: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "integrated_total",
			Help:      "Tasks integrated successfully.",
		}),
		Failed: f.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "failed_total",
			Help:      "Tasks whose integration returned an error.",
		}),
		Seconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "integration_seconds",
			Help:      "Wall time spent integrating one task.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
	}
}
