package ml

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/sjwhitworth/golearn/base"
	"github.com/sjwhitworth/golearn/knn"
)

const (
	Euclidean = "euclidean"
	Linear    = "linear"
)

// KNN is a k-nearest-neighbours classifier backed by golearn.
type KNN struct {
	k         int
	distance  string
	algorithm string
}

// NewKNN creates a knn classifier voting over the k closest rows.
// Only the euclidean distance with a linear search is supported,
// golearn reports progress on stdout for every other combination.
func NewKNN(k int, distance, algorithm string) *KNN {
	return &KNN{
		k:         k,
		distance:  distance,
		algorithm: algorithm,
	}
}

func (c *KNN) Fit(x [][]float64, y []int) (Model, error) {
	if err := checkFit(x, y); err != nil {
		return nil, err
	}
	if c.distance != Euclidean || c.algorithm != Linear {
		return nil, fmt.Errorf("%s distance with %s search: %w", c.distance, c.algorithm, ErrUnsupportedSearch)
	}
	if c.k < 1 || len(x) < c.k {
		return nil, fmt.Errorf("%d rows for %d neighbours: %w", len(x), c.k, ErrTooFewRows)
	}
	s := newSchema(len(x[0]))
	train, err := s.instances(x, y)
	if err != nil {
		return nil, fmt.Errorf("could not create training instances: %w", err)
	}

	cls := knn.NewKnnClassifier(c.distance, c.algorithm, c.k)
	err = cls.Fit(train)
	if err != nil {
		log.Error().Err(err).Msg("could not train knn model")
		return nil, err
	}
	log.Debug().
		Int("k", c.k).
		Str("distance", c.distance).
		Str("algorithm", c.algorithm).
		Int("rows", len(x)).
		Msg("trained knn model")
	return &knnModel{schema: s, cls: cls}, nil
}

type knnModel struct {
	schema *schema
	cls    *knn.KNNClassifier
}

func (m *knnModel) Predict(x [][]float64) ([]int, error) {
	if len(x) == 0 {
		return []int{}, nil
	}
	test, err := m.schema.instances(x, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create test instances: %w", err)
	}
	predictions, err := m.cls.Predict(test)
	if err != nil {
		log.Error().Err(err).Msg("could not predict on knn model")
		return nil, err
	}
	yy := make([]int, len(x))
	for i := range yy {
		class := base.GetClass(predictions, i)
		y, err := strconv.Atoi(class)
		if err != nil {
			return nil, fmt.Errorf("unexpected class '%s' at %d: %w", class, i, ErrInvalidLabel)
		}
		yy[i] = y
	}
	return yy, nil
}

// schema holds the golearn attributes shared by the training and test instances,
// so that both grids stay compatible for prediction.
type schema struct {
	features []*base.FloatAttribute
	class    *base.CategoricalAttribute
}

func newSchema(dim int) *schema {
	features := make([]*base.FloatAttribute, dim)
	for i := range features {
		features[i] = base.NewFloatAttribute(fmt.Sprintf("x%d", i))
	}
	class := base.NewCategoricalAttribute()
	class.SetName("label")
	// register both labels up front so the class values keep a stable order
	class.GetSysValFromString(strconv.Itoa(negative))
	class.GetSysValFromString(strconv.Itoa(positive))
	return &schema{
		features: features,
		class:    class,
	}
}

// instances converts the rows into golearn instances.
// Without labels every row is marked as negative.
func (s *schema) instances(x [][]float64, y []int) (*base.DenseInstances, error) {
	inst := base.NewDenseInstances()
	specs := make([]base.AttributeSpec, len(s.features))
	for i, a := range s.features {
		specs[i] = inst.AddAttribute(a)
	}
	classSpec := inst.AddAttribute(s.class)
	if err := inst.AddClassAttribute(s.class); err != nil {
		return nil, err
	}
	if err := inst.Extend(len(x)); err != nil {
		return nil, err
	}
	for r, row := range x {
		if len(row) != len(specs) {
			return nil, fmt.Errorf("row %d has %d features instead of %d: %w", r, len(row), len(specs), ErrLengthMismatch)
		}
		for c, v := range row {
			inst.Set(specs[c], r, base.PackFloatToBytes(v))
		}
		label := negative
		if y != nil {
			label = y[r]
		}
		inst.Set(classSpec, r, s.class.GetSysValFromString(strconv.Itoa(label)))
	}
	return inst, nil
}
