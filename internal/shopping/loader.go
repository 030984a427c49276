package shopping

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

const (
	returningVisitor = "Returning_Visitor"
	trueFlag         = "TRUE"
)

// Load reads the dataset from the csv file at the given path.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file '%s': %w", path, err)
	}
	defer f.Close()

	ds, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("could not load '%s': %w", path, err)
	}

	log.Debug().
		Str("file", path).
		Int("sessions", ds.Len()).
		Int("positives", ds.Positives()).
		Msg("loaded dataset")
	return ds, nil
}

// Read parses the csv records of the given reader into a dataset.
// The first record is the header and is skipped.
// Any invalid record aborts the whole read.
func Read(r io.Reader) (*Dataset, error) {
	reader := csv.NewReader(r)
	// field count is checked per record, rows only need to cover the schema
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("missing header: %w", ErrFormat)
		}
		return nil, fmt.Errorf("could not read header: %s: %w", err.Error(), ErrFormat)
	}

	ds := &Dataset{
		Evidence: make([]Evidence, 0),
		Labels:   make([]Label, 0),
	}
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read record: %s: %w", err.Error(), ErrFormat)
		}
		line, _ := reader.FieldPos(0)
		evidence, label, err := parse(line, row)
		if err != nil {
			return nil, err
		}
		ds.Evidence = append(ds.Evidence, evidence)
		ds.Labels = append(ds.Labels, label)
	}
	return ds, nil
}

// Parse converts a single record into its evidence vector and label.
func Parse(row []string) (Evidence, Label, error) {
	return parse(0, row)
}

func parse(line int, row []string) (Evidence, Label, error) {
	var e Evidence
	if len(row) < len(Columns) {
		return e, NoPurchase, &RowError{
			Line:   line,
			Column: -1,
			Err:    fmt.Errorf("expected %d fields but got %d: %w", len(Columns), len(row), ErrFormat),
		}
	}

	for i := 0; i < NumFeatures; i++ {
		v, err := convert(i, row[i])
		if err != nil {
			return e, NoPurchase, &RowError{
				Line:   line,
				Column: i,
				Value:  row[i],
				Err:    err,
			}
		}
		e[i] = v
	}

	return e, flag(row[Revenue]), nil
}

func convert(column int, value string) (float64, error) {
	switch column {
	case Administrative, Informational, ProductRelated,
		OperatingSystems, Browser, Region, TrafficType:
		i, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("not an integer: %w", ErrFormat)
		}
		return float64(i), nil
	case MonthIndex:
		m, err := Month(value)
		if err != nil {
			return 0, ErrUnknownMonth
		}
		return float64(m), nil
	case VisitorType:
		if value == returningVisitor {
			return 1, nil
		}
		return 0, nil
	case Weekend:
		return float64(flag(value)), nil
	default:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %w", ErrFormat)
		}
		return f, nil
	}
}

// flag maps the exact upper case TRUE to 1, anything else to 0.
func flag(value string) Label {
	if value == trueFlag {
		return Purchase
	}
	return NoPurchase
}
