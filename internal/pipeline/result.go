package pipeline

import (
	"fmt"
	"io"

	shopmath "github.com/drakos74/shopping/internal/math"
	"github.com/drakos74/shopping/internal/math/ml"
	"github.com/drakos74/shopping/internal/metrics"
	"github.com/drakos74/shopping/internal/shopping"
	"github.com/drakos74/shopping/internal/storage/file/json"
)

// Result is the outcome of a pipeline run.
type Result struct {
	ID          string                    `json:"id"`
	Model       string                    `json:"model"`
	Seed        uint64                    `json:"seed"`
	Samples     int                       `json:"samples"`
	Train       int                       `json:"train"`
	Test        int                       `json:"test"`
	Correct     int                       `json:"correct"`
	Incorrect   int                       `json:"incorrect"`
	Sensitivity float64                   `json:"sensitivity"`
	Specificity float64                   `json:"specificity"`
	Confusion   ml.Confusion              `json:"confusion"`
	Features    []shopping.FeatureSummary `json:"features"`
}

// Print writes the summary of the run.
func (r *Result) Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "Correct: %d\nIncorrect: %d\nTrue Positive Rate: %s%%\nTrue Negative Rate: %s%%\n",
		r.Correct,
		r.Incorrect,
		shopmath.Percent(r.Sensitivity),
		shopmath.Percent(r.Specificity))
	return err
}

// Save stores the result as json in the given directory, named by the run id.
func (r *Result) Save(dir string) error {
	return json.Save(dir, r.ID+".json", r)
}

// Metrics converts the result for the metrics registry.
func (r *Result) Metrics() metrics.Run {
	return metrics.Run{
		Model:       r.Model,
		Train:       r.Train,
		Test:        r.Test,
		Correct:     r.Correct,
		Incorrect:   r.Incorrect,
		Sensitivity: r.Sensitivity,
		Specificity: r.Specificity,
	}
}
