package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/drakos74/shopping/infra/config"
	"github.com/drakos74/shopping/internal/math/ml"
	"github.com/drakos74/shopping/internal/shopping"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/evaluation"
)

// Pipeline loads a dataset, splits it, trains a classifier and evaluates it.
type Pipeline struct {
	model      string
	testSize   float64
	seed       uint64
	splitter   ml.Splitter
	classifier ml.Classifier
}

// New creates a pipeline for the given config.
func New(cfg config.Config) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	classifier, err := ml.New(ml.Options{
		Model:      cfg.Model,
		Neighbours: cfg.Neighbours,
		Distance:   cfg.Distance,
		Algorithm:  cfg.Algorithm,
		Trees:      cfg.Trees,
	})
	if err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	var splitter ml.Splitter = ml.NewRandomSplit(seed)
	if cfg.Stratify {
		splitter = ml.NewStratifiedSplit(seed)
	}
	return &Pipeline{
		model:      cfg.Model,
		testSize:   cfg.TestSize,
		seed:       seed,
		splitter:   splitter,
		classifier: classifier,
	}, nil
}

// WithClassifier replaces the classifier of the pipeline.
func (p *Pipeline) WithClassifier(model string, classifier ml.Classifier) *Pipeline {
	p.model = model
	p.classifier = classifier
	return p
}

// Run evaluates the classifier on the dataset file at the given path.
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	ds, err := shopping.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	return p.Evaluate(ctx, ds)
}

// Evaluate splits the dataset, trains the classifier on the training set
// and scores its predictions on the test set.
// The context is checked between the stages.
func (p *Pipeline) Evaluate(ctx context.Context, ds *shopping.Dataset) (*Result, error) {
	if err := ds.Validate(); err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	result := &Result{
		ID:       uuid.New().String(),
		Model:    p.model,
		Seed:     p.seed,
		Samples:  ds.Len(),
		Features: ds.Describe(),
	}
	logger := log.With().Str("run", result.ID).Str("model", p.model).Logger()
	logger.Debug().
		Int("sessions", result.Samples).
		Int("positives", ds.Positives()).
		Interface("features", result.Features).
		Msg("described dataset")

	xTrain, xTest, yTrain, yTest, err := p.splitter.Split(ds.Features(), ds.Classes(), p.testSize)
	if err != nil {
		return nil, fmt.Errorf("split: %w", err)
	}
	result.Train = len(yTrain)
	result.Test = len(yTest)
	logger.Debug().
		Int("train", result.Train).
		Int("test", result.Test).
		Uint64("seed", p.seed).
		Msg("split dataset")

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	model, err := p.classifier.Fit(xTrain, yTrain)
	if err != nil {
		return nil, fmt.Errorf("fit: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	predictions, err := model.Predict(xTest)
	if err != nil {
		return nil, fmt.Errorf("predict: %w", err)
	}

	confusion, err := ml.NewConfusion(yTest, predictions)
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	result.Confusion = confusion
	result.Correct = confusion.Correct()
	result.Incorrect = confusion.Incorrect()

	sensitivity, err := confusion.Sensitivity()
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	specificity, err := confusion.Specificity()
	if err != nil {
		return nil, fmt.Errorf("evaluate: %w", err)
	}
	result.Sensitivity = sensitivity
	result.Specificity = specificity

	logger.Debug().
		Float64("sensitivity", sensitivity).
		Float64("specificity", specificity).
		Str("summary", evaluation.GetSummary(confusion.Matrix())).
		Msg("evaluated predictions")
	return result, nil
}
