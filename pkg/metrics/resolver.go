package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/rescache/pkg/insertion"
)

// resolverMetrics implements insertion.Metrics using Prometheus.
type resolverMetrics struct {
	resolutions *prometheus.CounterVec
	invocations *prometheus.CounterVec
}

// NewResolverMetrics creates a Prometheus implementation of insertion.Metrics.
// Collectors already registered on reg by an earlier call are reused.
func NewResolverMetrics(reg prometheus.Registerer) (insertion.Metrics, error) {
	m := &resolverMetrics{
		resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_resolutions_total",
			Help: "Total number of insertion targets resolved, by outcome kind",
		}, []string{"kind"}),

		invocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rescache_invocations_total",
			Help: "Total number of insertion invocations",
		}, []string{"kind", "outcome"}),
	}

	var err error
	if m.resolutions, err = register(reg, m.resolutions); err != nil {
		return nil, err
	}
	if m.invocations, err = register(reg, m.invocations); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *resolverMetrics) Resolved(kind insertion.Kind) {
	m.resolutions.WithLabelValues(kind.String()).Inc()
}

func (m *resolverMetrics) Invoked(kind insertion.Kind, outcome insertion.Outcome) {
	m.invocations.WithLabelValues(kind.String(), string(outcome)).Inc()
}
