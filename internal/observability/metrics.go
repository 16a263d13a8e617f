// Package observability holds the prometheus collectors of a shell
// session.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/gsh/pkg/domain"
)

// Metrics counts command executions and registry misses.
type Metrics struct {
	CommandsTotal        *prometheus.CounterVec
	UnknownCommandsTotal prometheus.Counter
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		CommandsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gsh_commands_total",
				Help: "Commands executed, by command name and status kind.",
			},
			[]string{"command", "status"},
		),
		UnknownCommandsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "gsh_unknown_commands_total",
				Help: "Command lookups that did not match a registered command.",
			},
		),
	}
	reg.MustRegister(m.CommandsTotal, m.UnknownCommandsTotal)
	return m
}

// ObserveCommand records one command execution outcome.
func (m *Metrics) ObserveCommand(name string, kind domain.StatusKind) {
	m.CommandsTotal.WithLabelValues(name, kind.String()).Inc()
}

// ObserveUnknown records a registry miss.
func (m *Metrics) ObserveUnknown() {
	m.UnknownCommandsTotal.Inc()
}
