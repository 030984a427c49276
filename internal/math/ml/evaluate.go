package ml

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/sjwhitworth/golearn/evaluation"
)

const (
	negative = 0
	positive = 1
)

var (
	// ErrLengthMismatch signals label and prediction sequences of different size.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidLabel signals a label outside of {0,1}.
	ErrInvalidLabel = errors.New("invalid label")
	// ErrNoPositives signals an undefined sensitivity.
	ErrNoPositives = errors.New("no positive labels")
	// ErrNoNegatives signals an undefined specificity.
	ErrNoNegatives = errors.New("no negative labels")
)

// Confusion holds the outcome counts of a binary classification.
type Confusion struct {
	TruePositive  int `json:"true_positive"`
	TrueNegative  int `json:"true_negative"`
	FalsePositive int `json:"false_positive"`
	FalseNegative int `json:"false_negative"`
}

// NewConfusion counts the outcomes of the predictions against the actual labels.
// Both sequences must be of the same length and contain only 0 or 1.
func NewConfusion(actual, predicted []int) (Confusion, error) {
	var c Confusion
	if len(actual) != len(predicted) {
		return c, fmt.Errorf("%d labels for %d predictions: %w", len(actual), len(predicted), ErrLengthMismatch)
	}
	for i, a := range actual {
		p := predicted[i]
		if !binary(a) || !binary(p) {
			return c, fmt.Errorf("at %d: actual=%d predicted=%d: %w", i, a, p, ErrInvalidLabel)
		}
		switch {
		case a == positive && p == positive:
			c.TruePositive++
		case a == negative && p == negative:
			c.TrueNegative++
		case a == negative:
			c.FalsePositive++
		default:
			c.FalseNegative++
		}
	}
	return c, nil
}

func binary(l int) bool {
	return l == negative || l == positive
}

func (c Confusion) Positives() int {
	return c.TruePositive + c.FalseNegative
}

func (c Confusion) Negatives() int {
	return c.TrueNegative + c.FalsePositive
}

// Correct returns the number of predictions matching the actual label.
func (c Confusion) Correct() int {
	return c.TruePositive + c.TrueNegative
}

// Incorrect returns the number of predictions not matching the actual label.
func (c Confusion) Incorrect() int {
	return c.FalsePositive + c.FalseNegative
}

// Sensitivity is the true positive rate.
func (c Confusion) Sensitivity() (float64, error) {
	if c.Positives() == 0 {
		return 0, ErrNoPositives
	}
	return float64(c.TruePositive) / float64(c.Positives()), nil
}

// Specificity is the true negative rate.
func (c Confusion) Specificity() (float64, error) {
	if c.Negatives() == 0 {
		return 0, ErrNoNegatives
	}
	return float64(c.TrueNegative) / float64(c.Negatives()), nil
}

// Matrix converts the counts into a golearn confusion matrix,
// keyed by the string form of the labels.
func (c Confusion) Matrix() evaluation.ConfusionMatrix {
	p := strconv.Itoa(positive)
	n := strconv.Itoa(negative)
	return evaluation.ConfusionMatrix{
		p: {p: c.TruePositive, n: c.FalseNegative},
		n: {n: c.TrueNegative, p: c.FalsePositive},
	}
}

// Evaluate returns the sensitivity and specificity of the predictions.
// A rate without any actual labels of its class is undefined and returns an error.
func Evaluate(actual, predicted []int) (float64, float64, error) {
	c, err := NewConfusion(actual, predicted)
	if err != nil {
		return 0, 0, err
	}
	sensitivity, err := c.Sensitivity()
	if err != nil {
		return 0, 0, err
	}
	specificity, err := c.Specificity()
	if err != nil {
		return 0, 0, err
	}
	return sensitivity, specificity, nil
}
