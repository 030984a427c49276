package shopping

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat signals a field that cannot be converted to its numeric type,
	// or a row with too few fields.
	ErrFormat = errors.New("invalid format")
	// ErrUnknownMonth signals a month name outside the fixed table.
	ErrUnknownMonth = errors.New("unknown month")
)

// RowError locates a conversion failure in the input file.
type RowError struct {
	// Line is the 1-based line of the record in the file.
	Line int
	// Column is the 0-based field index, -1 when the row as a whole is invalid.
	Column int
	Value  string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Err.Error())
	}
	return fmt.Sprintf("line %d: column %s: '%s': %s", e.Line, Columns[e.Column], e.Value, e.Err.Error())
}

func (e *RowError) Unwrap() error {
	return e.Err
}
