package ml

import (
	"errors"
	"fmt"
)

const (
	KNNModel      = "knn"
	ForestModel   = "forest"
	MajorityModel = "majority"
)

var (
	// ErrEmptyTraining signals a fit without any training rows.
	ErrEmptyTraining = errors.New("empty training set")
	// ErrUnknownModel signals a model name without an implementation.
	ErrUnknownModel = errors.New("unknown model")
	// ErrTooFewRows signals fewer training rows than voting neighbours.
	ErrTooFewRows = errors.New("too few training rows")
	// ErrUnsupportedSearch signals a knn distance or search algorithm that is not supported.
	ErrUnsupportedSearch = errors.New("unsupported neighbour search")
)

// Classifier trains a binary classification model.
type Classifier interface {
	Fit(x [][]float64, y []int) (Model, error)
}

// Model predicts the labels of the given rows.
type Model interface {
	Predict(x [][]float64) ([]int, error)
}

// Options selects and parameterises a classifier.
type Options struct {
	Model      string
	Neighbours int
	Distance   string
	Algorithm  string
	Trees      int
}

// New creates the classifier described by the options.
func New(opts Options) (Classifier, error) {
	switch opts.Model {
	case KNNModel:
		return NewKNN(opts.Neighbours, opts.Distance, opts.Algorithm), nil
	case ForestModel:
		return NewRandomForest(opts.Trees), nil
	case MajorityModel:
		return NewMajority(), nil
	}
	return nil, fmt.Errorf("'%s': %w", opts.Model, ErrUnknownModel)
}

func checkFit(x [][]float64, y []int) error {
	if len(x) != len(y) {
		return fmt.Errorf("%d rows for %d labels: %w", len(x), len(y), ErrLengthMismatch)
	}
	if len(y) == 0 {
		return ErrEmptyTraining
	}
	for i, l := range y {
		if !binary(l) {
			return fmt.Errorf("at %d: %d: %w", i, l, ErrInvalidLabel)
		}
	}
	return nil
}
