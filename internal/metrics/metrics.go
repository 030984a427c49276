package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Run is the outcome of a classification run.
type Run struct {
	Model       string
	Train       int
	Test        int
	Correct     int
	Incorrect   int
	Sensitivity float64
	Specificity float64
}

// Metrics exposes the outcome of runs as prometheus gauges.
// Each instance uses its own registry.
type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

func New() *Metrics {
	p := NewPrometheusMetrics()
	registry := prometheus.NewRegistry()
	registry.MustRegister(p.Sensitivity, p.Specificity, p.Predictions, p.Samples)
	return &Metrics{
		registry:   registry,
		prometheus: p,
	}
}

// Observe records the given run.
func (m *Metrics) Observe(run Run) {
	m.prometheus.Sensitivity.WithLabelValues(run.Model).Set(run.Sensitivity)
	m.prometheus.Specificity.WithLabelValues(run.Model).Set(run.Specificity)
	m.prometheus.Predictions.WithLabelValues(run.Model, "correct").Set(float64(run.Correct))
	m.prometheus.Predictions.WithLabelValues(run.Model, "incorrect").Set(float64(run.Incorrect))
	m.prometheus.Samples.WithLabelValues(run.Model, "train").Set(float64(run.Train))
	m.prometheus.Samples.WithLabelValues(run.Model, "test").Set(float64(run.Test))
}

// Registry returns the gatherer holding the recorded metrics.
func (m *Metrics) Registry() prometheus.Gatherer {
	return m.registry
}

// Write stores the recorded metrics in the text exposition format,
// to be picked up by the node exporter textfile collector.
func (m *Metrics) Write(path string) error {
	err := prometheus.WriteToTextfile(path, m.registry)
	if err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", path, err)
	}
	log.Debug().Str("file", path).Msg("wrote metrics")
	return nil
}
