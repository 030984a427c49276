package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "shopping"

type Prometheus struct {
	Sensitivity *prometheus.GaugeVec
	Specificity *prometheus.GaugeVec
	Predictions *prometheus.GaugeVec
	Samples     *prometheus.GaugeVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Sensitivity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "sensitivity",
				Help:      "True positive rate of the last run.",
			}, []string{"model"}),
		Specificity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "specificity",
				Help:      "True negative rate of the last run.",
			}, []string{"model"}),
		Predictions: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "predictions",
				Help:      "Test predictions of the last run by outcome.",
			}, []string{"model", "outcome"}),
		Samples: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "samples",
				Help:      "Sessions used by the last run by set.",
			}, []string{"model", "set"}),
	}
}
