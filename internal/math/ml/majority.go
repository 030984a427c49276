package ml

// Majority always predicts the most frequent training label.
type Majority struct{}

func NewMajority() *Majority {
	return &Majority{}
}

// Fit counts the training labels, a tie resolves to the negative class.
func (Majority) Fit(x [][]float64, y []int) (Model, error) {
	if err := checkFit(x, y); err != nil {
		return nil, err
	}
	positives := 0
	for _, l := range y {
		positives += l
	}
	label := negative
	if 2*positives > len(y) {
		label = positive
	}
	return constant(label), nil
}

type constant int

func (c constant) Predict(x [][]float64) ([]int, error) {
	yy := make([]int, len(x))
	for i := range yy {
		yy[i] = int(c)
	}
	return yy, nil
}
