package ml

import (
	randomforest "github.com/malaschitz/randomForest"
	"github.com/rs/zerolog/log"
)

// RandomForest is a random forest classifier.
type RandomForest struct {
	trees int
}

func NewRandomForest(n int) *RandomForest {
	return &RandomForest{
		trees: n,
	}
}

func (rf *RandomForest) Fit(x [][]float64, y []int) (Model, error) {
	if err := checkFit(x, y); err != nil {
		return nil, err
	}
	forest := &randomforest.Forest{}
	forest.Data = randomforest.ForestData{X: x, Class: y}
	forest.Train(rf.trees)
	log.Debug().
		Int("trees", rf.trees).
		Int("rows", len(x)).
		Floats64("importance", forest.FeatureImportance).
		Msg("trained random forest")
	return &forestModel{forest: forest}, nil
}

type forestModel struct {
	forest *randomforest.Forest
}

// Predict picks the class with the most votes, the lowest class on a tie.
func (m *forestModel) Predict(x [][]float64) ([]int, error) {
	yy := make([]int, len(x))
	for i, row := range x {
		votes := m.forest.Vote(row)
		best := 0
		for c, v := range votes {
			if v > votes[best] {
				best = c
			}
		}
		yy[i] = best
	}
	return yy, nil
}
