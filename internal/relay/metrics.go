package relay

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for the generations counter.
const (
	OutcomeOK           = "ok"
	OutcomeInvalidInput = "invalid_input"
	OutcomeUpstream     = "upstream_error"
	OutcomeUnparseable  = "unparseable"
	OutcomeInvalidShape = "invalid_shape"
)

// Metrics tracks relay outcomes and upstream latency.
type Metrics struct {
	generations *prometheus.CounterVec
	upstream    *prometheus.HistogramVec
}

// NewMetrics registers relay collectors on reg. A nil reg yields unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "quiz_relay",
			Name:      "generations_total",
			Help:      "Quiz generation requests by outcome.",
		}, []string{"outcome"}),
		upstream: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "quiz_relay",
			Name:      "upstream_duration_seconds",
			Help:      "Latency of calls to the generation API.",
			Buckets:   []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
		}, []string{"provider"}),
	}
	if reg != nil {
		reg.MustRegister(m.generations, m.upstream)
	}
	return m
}

func (m *Metrics) observeOutcome(outcome string) {
	m.generations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) observeUpstream(provider string, started time.Time) {
	m.upstream.WithLabelValues(provider).Observe(time.Since(started).Seconds())
}
