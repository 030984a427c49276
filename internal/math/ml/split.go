package ml

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

// ErrInvalidTestSize signals a test fraction outside of (0,1).
var ErrInvalidTestSize = errors.New("invalid test size")

// Splitter partitions a dataset into a training and a test set.
type Splitter interface {
	Split(x [][]float64, y []int, testSize float64) (xTrain, xTest [][]float64, yTrain, yTest []int, err error)
}

// RandomSplit holds out a random fraction of the rows.
type RandomSplit struct {
	rnd *rand.Rand
}

// NewRandomSplit creates a random split, reproducible for the same seed.
func NewRandomSplit(seed uint64) *RandomSplit {
	return &RandomSplit{rnd: rand.New(rand.NewSource(seed))}
}

// Split holds out round(n * testSize) rows for the test set.
func (s *RandomSplit) Split(x [][]float64, y []int, testSize float64) ([][]float64, [][]float64, []int, []int, error) {
	if err := checkSplit(x, y, testSize); err != nil {
		return nil, nil, nil, nil, err
	}
	perm := s.rnd.Perm(len(y))
	nTest := holdout(len(y), testSize)
	return partition(x, y, perm[nTest:], perm[:nTest])
}

// StratifiedSplit holds out a random fraction of the rows of each class,
// so that both sets keep the class ratio of the dataset.
type StratifiedSplit struct {
	rnd *rand.Rand
}

// NewStratifiedSplit creates a stratified split, reproducible for the same seed.
func NewStratifiedSplit(seed uint64) *StratifiedSplit {
	return &StratifiedSplit{rnd: rand.New(rand.NewSource(seed))}
}

func (s *StratifiedSplit) Split(x [][]float64, y []int, testSize float64) ([][]float64, [][]float64, []int, []int, error) {
	if err := checkSplit(x, y, testSize); err != nil {
		return nil, nil, nil, nil, err
	}

	groups := make(map[int][]int)
	for i, c := range y {
		groups[c] = append(groups[c], i)
	}
	// map iteration is random, classes are visited in order to stay reproducible
	classes := make([]int, 0, len(groups))
	for c := range groups {
		classes = append(classes, c)
	}
	sort.Ints(classes)

	train := make([]int, 0, len(y))
	test := make([]int, 0, len(y))
	for _, c := range classes {
		idx := groups[c]
		s.rnd.Shuffle(len(idx), func(i, j int) {
			idx[i], idx[j] = idx[j], idx[i]
		})
		nTest := holdout(len(idx), testSize)
		test = append(test, idx[:nTest]...)
		train = append(train, idx[nTest:]...)
	}
	return partition(x, y, train, test)
}

func checkSplit(x [][]float64, y []int, testSize float64) error {
	if len(x) != len(y) {
		return fmt.Errorf("%d rows for %d labels: %w", len(x), len(y), ErrLengthMismatch)
	}
	if testSize <= 0 || testSize >= 1 || math.IsNaN(testSize) {
		return fmt.Errorf("%v: %w", testSize, ErrInvalidTestSize)
	}
	return nil
}

func holdout(n int, testSize float64) int {
	return int(math.Round(float64(n) * testSize))
}

func partition(x [][]float64, y []int, train, test []int) ([][]float64, [][]float64, []int, []int, error) {
	xTrain, yTrain := pick(x, y, train)
	xTest, yTest := pick(x, y, test)
	return xTrain, xTest, yTrain, yTest, nil
}

func pick(x [][]float64, y []int, idx []int) ([][]float64, []int) {
	xx := make([][]float64, len(idx))
	yy := make([]int, len(idx))
	for i, j := range idx {
		xx[i] = x[j]
		yy[i] = y[j]
	}
	return xx, yy
}
