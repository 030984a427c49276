package shopping

import "fmt"

// months maps the month names used in the dataset to 0-based indices.
// Note that June is spelled out in full, while every other month is abbreviated.
var months = map[string]int{
	"Jan":  0,
	"Feb":  1,
	"Mar":  2,
	"Apr":  3,
	"May":  4,
	"June": 5,
	"Jul":  6,
	"Aug":  7,
	"Sep":  8,
	"Oct":  9,
	"Nov":  10,
	"Dec":  11,
}

// Month returns the index of the given month name.
func Month(name string) (int, error) {
	m, ok := months[name]
	if !ok {
		return 0, fmt.Errorf("'%s': %w", name, ErrUnknownMonth)
	}
	return m, nil
}
