// Package obsmetrics adapts Prometheus client metrics to ecs.MetricsCollector,
// grounded in the teacher's PrometheusWorkGroupCollector (observability.go)
// but backed by the real client_golang registry rather than a hand-rolled
// text exposition writer.
package obsmetrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Collector records per-phase, per-system durations and error counts as
// Prometheus metrics.
type Collector struct {
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
}

// New registers the collector's metrics against reg. Pass
// prometheus.DefaultRegisterer for the global registry.
func New(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "ecs",
			Name:      "system_duration_seconds",
			Help:      "System invocation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"phase", "system"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecs",
			Name:      "system_errors_total",
			Help:      "System invocation errors.",
		}, []string{"phase", "system"}),
	}
	if err := reg.Register(c.duration); err != nil {
		return nil, err
	}
	if err := reg.Register(c.errors); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collector) ObserveSystemDuration(phase float64, system string, seconds float64) {
	c.duration.WithLabelValues(phaseLabel(phase), system).Observe(seconds)
}

func (c *Collector) IncSystemError(phase float64, system string) {
	c.errors.WithLabelValues(phaseLabel(phase), system).Inc()
}

func phaseLabel(phase float64) string {
	switch phase {
	case 0:
		return "start"
	case 1:
		return "tick"
	case 2:
		return "end"
	case 3:
		return "exit"
	default:
		return strconv.FormatFloat(phase, 'g', -1, 64)
	}
}
