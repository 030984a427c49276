package shopping

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "Administrative,Administrative_Duration,Informational,Informational_Duration,ProductRelated,ProductRelated_Duration,BounceRates,ExitRates,PageValues,SpecialDay,Month,OperatingSystems,Browser,Region,TrafficType,VisitorType,Weekend,Revenue\n"

func record(month, visitor, weekend, revenue string) []string {
	return []string{"1", "2.5", "3", "4.25", "5", "6.75", "0.01", "0.02", "9.5", "0.8", month, "11", "12", "13", "14", visitor, weekend, revenue}
}

func TestParse(t *testing.T) {

	e, l, err := Parse(record("Mar", "Returning_Visitor", "TRUE", "TRUE"))
	require.NoError(t, err)

	assert.Equal(t, Evidence{1, 2.5, 3, 4.25, 5, 6.75, 0.01, 0.02, 9.5, 0.8, 2, 11, 12, 13, 14, 1, 1}, e)
	assert.Equal(t, Purchase, l)
	assert.Equal(t, NumFeatures, len(e))

}

func TestParse_Month(t *testing.T) {

	type test struct {
		month string
		index float64
		err   error
	}

	tests := map[string]test{
		"jan":        {month: "Jan", index: 0},
		"feb":        {month: "Feb", index: 1},
		"may":        {month: "May", index: 4},
		"june":       {month: "June", index: 5},
		"jul":        {month: "Jul", index: 6},
		"dec":        {month: "Dec", index: 11},
		"jun":        {month: "Jun", err: ErrUnknownMonth},
		"lower-case": {month: "jan", err: ErrUnknownMonth},
		"unknown":    {month: "Xyz", err: ErrUnknownMonth},
		"empty":      {month: "", err: ErrUnknownMonth},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, _, err := Parse(record(tt.month, "New_Visitor", "FALSE", "FALSE"))
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				var rowErr *RowError
				require.True(t, errors.As(err, &rowErr))
				assert.Equal(t, MonthIndex, rowErr.Column)
				assert.Equal(t, tt.month, rowErr.Value)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.index, e[MonthIndex])
		})
	}

}

func TestParse_Flags(t *testing.T) {

	type test struct {
		value   string
		visitor float64
		flag    float64
	}

	tests := map[string]test{
		"returning": {value: "Returning_Visitor", visitor: 1},
		"new":       {value: "New_Visitor"},
		"other":     {value: "Other"},
		"near":      {value: "returning_visitor"},
		"empty":     {value: ""},
		"TRUE":      {value: "TRUE", flag: 1},
		"True":      {value: "True"},
		"true":      {value: "true"},
		"false":     {value: "false"},
		"FALSE":     {value: "FALSE"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e, l, err := Parse(record("Jan", tt.value, tt.value, tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.visitor, e[VisitorType])
			assert.Equal(t, tt.flag, e[Weekend])
			assert.Equal(t, Label(tt.flag), l)
		})
	}

}

func TestParse_Invalid(t *testing.T) {

	type test struct {
		column int
		value  string
	}

	tests := map[string]test{
		"fractional-count":    {column: Administrative, value: "1.5"},
		"text-count":          {column: ProductRelated, value: "many"},
		"empty-count":         {column: Informational, value: ""},
		"text-duration":       {column: AdministrativeDuration, value: "long"},
		"text-rate":           {column: ExitRates, value: "0,2"},
		"fractional-category": {column: Browser, value: "2.0"},
		"empty-region":        {column: Region, value: ""},
		"padded-count":        {column: Administrative, value: " 3"},
		"padded-rate":         {column: BounceRates, value: "0.2 "},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			row := record("Jan", "New_Visitor", "FALSE", "FALSE")
			row[tt.column] = tt.value
			_, _, err := Parse(row)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrFormat))
			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tt.column, rowErr.Column)
		})
	}

}

func TestParse_ShortRow(t *testing.T) {
	row := record("Jan", "New_Visitor", "FALSE", "FALSE")
	_, _, err := Parse(row[:17])
	assert.True(t, errors.Is(err, ErrFormat))
}

func TestLoad(t *testing.T) {

	ds, err := Load("testdata/sessions.csv")
	require.NoError(t, err)
	require.NoError(t, ds.Validate())

	assert.Equal(t, 5, ds.Len())
	assert.Equal(t, 2, ds.Positives())
	assert.Equal(t, 3, ds.Negatives())
	assert.Equal(t, []Label{0, 0, 0, 1, 1}, ds.Labels)

	// row order is preserved
	assert.Equal(t, Evidence{0, 0, 0, 0, 1, 0, 0.2, 0.2, 0, 0, 1, 1, 1, 1, 1, 1, 0}, ds.Evidence[0])
	assert.Equal(t, Evidence{3, 142.5, 0, 0, 48, 1052.255952, 0.004347826, 0.013043478, 0, 0, 5, 2, 2, 4, 1, 1, 1}, ds.Evidence[2])
	assert.Equal(t, Evidence{4, 56, 2, 120, 36, 1408.5, 0, 0.0083, 58.6, 0, 10, 2, 2, 3, 13, 0, 1}, ds.Evidence[4])

	for _, e := range ds.Evidence {
		assert.Equal(t, NumFeatures, len(e))
		assert.True(t, e[MonthIndex] >= 0 && e[MonthIndex] <= 11)
		assert.Contains(t, []float64{0, 1}, e[VisitorType])
		assert.Contains(t, []float64{0, 1}, e[Weekend])
	}

}

func TestLoad_Failures(t *testing.T) {

	type test struct {
		file string
		err  error
		line int
	}

	tests := map[string]test{
		"unknown-month": {file: "testdata/unknown_month.csv", err: ErrUnknownMonth, line: 3},
		"short-row":     {file: "testdata/short_row.csv", err: ErrFormat, line: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ds, err := Load(tt.file)
			assert.Nil(t, ds)
			assert.True(t, errors.Is(err, tt.err))
			var rowErr *RowError
			require.True(t, errors.As(err, &rowErr))
			assert.Equal(t, tt.line, rowErr.Line)
		})
	}

}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.csv")
	assert.Error(t, err)
}

func TestRead(t *testing.T) {

	type test struct {
		input string
		len   int
		err   error
	}

	tests := map[string]test{
		"empty": {
			input: "",
			err:   ErrFormat,
		},
		"header-only": {
			input: header,
		},
		"extra-fields": {
			input: header + strings.Join(record("Oct", "Returning_Visitor", "FALSE", "TRUE"), ",") + ",extra\n",
			len:   1,
		},
		"blank-lines": {
			input: header + "\n" + strings.Join(record("Oct", "Returning_Visitor", "FALSE", "TRUE"), ",") + "\n\n",
			len:   1,
		},
		"bad-quote": {
			input: header + "0,\"0,0\n",
			err:   ErrFormat,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			ds, err := Read(strings.NewReader(tt.input))
			if tt.err != nil {
				assert.True(t, errors.Is(err, tt.err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.len, ds.Len())
		})
	}

}

func TestMonth(t *testing.T) {
	m, err := Month("June")
	require.NoError(t, err)
	assert.Equal(t, 5, m)

	_, err = Month("Jun")
	assert.True(t, errors.Is(err, ErrUnknownMonth))
	assert.Equal(t, 12, len(months))
}
