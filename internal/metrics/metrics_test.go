package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var run = Run{
	Model:       "knn",
	Train:       12,
	Test:        8,
	Correct:     6,
	Incorrect:   2,
	Sensitivity: 0.5,
	Specificity: 0.8333,
}

func TestMetrics_Observe(t *testing.T) {

	m := New()
	m.Observe(run)

	assert.Equal(t, 0.5, testutil.ToFloat64(m.prometheus.Sensitivity.WithLabelValues("knn")))
	assert.Equal(t, 0.8333, testutil.ToFloat64(m.prometheus.Specificity.WithLabelValues("knn")))
	assert.Equal(t, 6.0, testutil.ToFloat64(m.prometheus.Predictions.WithLabelValues("knn", "correct")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.prometheus.Predictions.WithLabelValues("knn", "incorrect")))
	assert.Equal(t, 8.0, testutil.ToFloat64(m.prometheus.Samples.WithLabelValues("knn", "test")))

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	assert.Equal(t, 4, len(families))

}

func TestMetrics_Write(t *testing.T) {

	m := New()
	m.Observe(run)

	path := filepath.Join(t.TempDir(), "shopping.prom")
	require.NoError(t, m.Write(path))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)

	assert.True(t, strings.Contains(text, `shopping_sensitivity{model="knn"} 0.5`))
	assert.True(t, strings.Contains(text, `shopping_predictions{model="knn",outcome="correct"} 6`))
	assert.True(t, strings.Contains(text, `shopping_samples{model="knn",set="train"} 12`))

}
