package harness

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Solver labels.
const (
	SolverExact     = "held_karp"
	SolverHeuristic = "local_search"
)

// Metrics records solver measurements on a private registry so that repeated
// runs (and tests) never collide with the global default registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	cost     *prometheus.GaugeVec
}

// NewMetrics creates and registers the solver collectors.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "openpath",
			Name:      "solver_duration_seconds",
			Help:      "Wall-clock time of one solver call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 14),
		}, []string{"solver"}),
		cost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "openpath",
			Name:      "solver_cost",
			Help:      "Open-path cost returned by the solver for one instance size.",
		}, []string{"solver", "size"}),
	}
	reg.MustRegister(m.duration, m.cost)

	return m
}

// Observe records one solver call.
func (m *Metrics) Observe(solver string, size int, cost float64, d time.Duration) {
	if m == nil {
		return
	}
	m.duration.WithLabelValues(solver).Observe(d.Seconds())
	m.cost.WithLabelValues(solver, strconv.Itoa(size)).Set(cost)
}

// Registry exposes the underlying registry (e.g. for an HTTP handler).
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes the current metrics in the text exposition format,
// suitable for the node_exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
