package shopping

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Positional indices of the evidence vector.
const (
	Administrative = iota
	AdministrativeDuration
	Informational
	InformationalDuration
	ProductRelated
	ProductRelatedDuration
	BounceRates
	ExitRates
	PageValues
	SpecialDay
	MonthIndex
	OperatingSystems
	Browser
	Region
	TrafficType
	VisitorType
	Weekend
	// NumFeatures is the size of the evidence vector.
	NumFeatures
)

// Revenue is the column of the label, right after the evidence fields.
const Revenue = NumFeatures

// Columns holds the header names of a session record, in file order.
var Columns = [NumFeatures + 1]string{
	"Administrative",
	"Administrative_Duration",
	"Informational",
	"Informational_Duration",
	"ProductRelated",
	"ProductRelated_Duration",
	"BounceRates",
	"ExitRates",
	"PageValues",
	"SpecialDay",
	"Month",
	"OperatingSystems",
	"Browser",
	"Region",
	"TrafficType",
	"VisitorType",
	"Weekend",
	"Revenue",
}

// Evidence is the numeric representation of one browsing session.
// Count and categorical fields hold whole numbers.
type Evidence [NumFeatures]float64

// Label is the purchase outcome of a session, 1 if revenue was generated.
type Label int

const (
	NoPurchase Label = 0
	Purchase   Label = 1
)

// Dataset holds the evidence and labels of a file, index aligned.
type Dataset struct {
	Evidence []Evidence
	Labels   []Label
}

// Len returns the number of sessions.
func (ds *Dataset) Len() int {
	return len(ds.Labels)
}

func (ds *Dataset) Positives() int {
	n := 0
	for _, l := range ds.Labels {
		if l == Purchase {
			n++
		}
	}
	return n
}

func (ds *Dataset) Negatives() int {
	return ds.Len() - ds.Positives()
}

// Validate checks the alignment of evidence and labels and the label domain.
func (ds *Dataset) Validate() error {
	if len(ds.Evidence) != len(ds.Labels) {
		return fmt.Errorf("evidence and labels are not aligned: %d != %d", len(ds.Evidence), len(ds.Labels))
	}
	for i, l := range ds.Labels {
		if l != NoPurchase && l != Purchase {
			return fmt.Errorf("invalid label at %d: %d", i, l)
		}
	}
	return nil
}

// Features returns the evidence as plain float slices.
// The slices are copies, the dataset stays untouched.
func (ds *Dataset) Features() [][]float64 {
	xx := make([][]float64, len(ds.Evidence))
	for i, e := range ds.Evidence {
		x := make([]float64, NumFeatures)
		copy(x, e[:])
		xx[i] = x
	}
	return xx
}

// Classes returns the labels as plain ints.
func (ds *Dataset) Classes() []int {
	yy := make([]int, len(ds.Labels))
	for i, l := range ds.Labels {
		yy[i] = int(l)
	}
	return yy
}

// FeatureSummary describes the distribution of one evidence field.
type FeatureSummary struct {
	Name   string  `json:"name"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Describe summarises every evidence field of the dataset.
// It returns nil for an empty dataset.
func (ds *Dataset) Describe() []FeatureSummary {
	if ds.Len() == 0 {
		return nil
	}
	summary := make([]FeatureSummary, NumFeatures)
	column := make([]float64, len(ds.Evidence))
	for f := 0; f < NumFeatures; f++ {
		for i, e := range ds.Evidence {
			column[i] = e[f]
		}
		mean, std := stat.MeanStdDev(column, nil)
		if len(column) == 1 {
			// sample deviation is undefined for a single session
			std = 0
		}
		summary[f] = FeatureSummary{
			Name:   Columns[f],
			Mean:   mean,
			StdDev: std,
			Min:    floats.Min(column),
			Max:    floats.Max(column),
		}
	}
	return summary
}
