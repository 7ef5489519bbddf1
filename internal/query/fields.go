package query

import (
	"errors"
	"fmt"
)

// ErrUnknownField marks a filter, order, or group-by request naming a column
// the entity does not expose. It is a caller bug, detected before any query
// reaches the database.
var ErrUnknownField = errors.New("unknown field")

// Fields declares the queryable columns of one entity. Column names double as
// the public field names of the query surface; everything else is rejected,
// which also keeps interpolated identifiers injection-safe.
type Fields struct {
	cols    map[string]bool
	numeric map[string]bool
}

func NewFields(cols []string, numeric []string) Fields {
	f := Fields{
		cols:    make(map[string]bool, len(cols)+len(numeric)),
		numeric: make(map[string]bool, len(numeric)),
	}
	for _, c := range cols {
		f.cols[c] = true
	}
	for _, c := range numeric {
		f.cols[c] = true
		f.numeric[c] = true
	}
	return f
}

func (f Fields) Has(name string) bool {
	return f.cols[name]
}

func (f Fields) IsNumeric(name string) bool {
	return f.numeric[name]
}

func (f Fields) check(name string) error {
	if !f.cols[name] {
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}
