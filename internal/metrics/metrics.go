// Package metrics exposes engine activity as Prometheus collectors by
// adapting them onto the domain lifecycle hooks.
package metrics

import (
	"context"

	"github.com/aretw0/cellgrid/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the engine collectors. Register it on a prometheus
// registry and attach Hooks() to the engine.
type Metrics struct {
	commands  *prometheus.CounterVec
	intents   *prometheus.CounterVec
	acks      *prometheus.CounterVec
	buildTime prometheus.Histogram
	buildSize prometheus.Gauge
}

// New creates the collector set.
func New() *Metrics {
	return &Metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellgrid_commands_total",
				Help: "Interpreted commands by kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellgrid_intents_total",
				Help: "Emitted executor intents by type.",
			},
			[]string{"type"},
		),
		acks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "cellgrid_acks_total",
				Help: "Executor acknowledgements by kind.",
			},
			[]string{"kind"},
		),
		buildTime: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "cellgrid_graph_build_seconds",
				Help:    "Wholesale dependency graph rebuild duration.",
				Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
			},
		),
		buildSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "cellgrid_graph_edges",
				Help: "Edge count of the most recent graph build.",
			},
		),
	}
}

// Register adds all collectors to reg.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.commands, m.intents, m.acks, m.buildTime, m.buildSize} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Hooks returns lifecycle hooks feeding these collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnCommand: func(_ context.Context, ev *domain.CommandEvent) {
			m.commands.WithLabelValues(string(ev.Kind), string(ev.Outcome)).Inc()
		},
		OnIntent: func(_ context.Context, ev *domain.IntentEvent) {
			m.intents.WithLabelValues(ev.Type).Inc()
		},
		OnAck: func(_ context.Context, sig *domain.AckSignal) {
			m.acks.WithLabelValues(string(sig.Kind)).Inc()
		},
		OnGraphBuild: func(_ context.Context, ev *domain.GraphEvent) {
			m.buildTime.Observe(ev.Duration.Seconds())
			m.buildSize.Set(float64(ev.Edges))
		},
	}
}
