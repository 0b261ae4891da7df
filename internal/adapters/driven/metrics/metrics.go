// Package metrics provides Prometheus instrumentation for conversions.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/edi-cli/internal/core/domain"
	"github.com/custodia-labs/edi-cli/internal/core/ports/driven"
)

// Ensure Metrics implements the interface.
var _ driven.ConversionMetrics = (*Metrics)(nil)

// Outcome label values.
const (
	outcomeSuccess = "success"
	outcomeFailure = "failure"
)

// Metrics provides observability for the conversion dispatcher.
type Metrics struct {
	registry *prometheus.Registry

	// Terminal states by command, dialect and outcome
	Conversions *prometheus.CounterVec

	// Dispatch latency by command
	Duration *prometheus.HistogramVec
}

// New creates a Metrics instance registered on its own registry, so several
// instances can coexist in one process.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,

		Conversions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "edi_conversions_total",
			Help: "Total conversions by command, dialect and outcome",
		}, []string{"command", "dialect", "outcome"}),

		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "edi_conversion_duration_seconds",
			Help:    "Duration of a conversion from decoding to its terminal state",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		}, []string{"command"}),
	}
}

// ObserveConversion records one terminal invocation.
func (m *Metrics) ObserveConversion(cmd domain.Command, dialect domain.Dialect, success bool, elapsed time.Duration) {
	if m == nil {
		return
	}
	outcome := outcomeFailure
	if success {
		outcome = outcomeSuccess
	}
	m.Conversions.WithLabelValues(string(cmd), dialect.String(), outcome).Inc()
	m.Duration.WithLabelValues(string(cmd)).Observe(elapsed.Seconds())
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
