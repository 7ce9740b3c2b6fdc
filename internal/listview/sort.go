package listview

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Direction is the sort order of a column.
type Direction int

const (
	// Ascending orders smallest first.
	Ascending Direction = iota
	// Descending reverses the ascending comparison.
	Descending
)

// Sort order names accepted by ParseDirection.
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// ErrInvalidSortOrder is returned for an unknown direction name.
var ErrInvalidSortOrder = errors.New("sort order must be 'asc' or 'desc'")

// String returns "asc" or "desc".
func (d Direction) String() string {
	if d == Descending {
		return SortOrderDesc
	}
	return SortOrderAsc
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// MarshalText encodes the direction as "asc" or "desc".
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText decodes "asc" or "desc".
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses "asc" or "desc", ignoring case and surrounding space.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SortOrderAsc:
		return Ascending, nil
	case SortOrderDesc:
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: got %q", ErrInvalidSortOrder, s)
	}
}

// SortSpec selects a column and direction. A nil *SortSpec means unsorted.
type SortSpec struct {
	Column    int       `json:"column"    yaml:"column"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// Sort returns a stably sorted copy of records.
//
// A nil spec, an out-of-range column or a column that is not sortable yields a
// copy in input order. Descending negates the ascending comparator, so records
// with equal keys keep their input order in both directions.
func Sort[R any](records []R, spec *SortSpec, schema Schema[R], registry *Registry) []R {
	out := make([]R, len(records))
	copy(out, records)

	col, ok := schema.sortColumn(spec)
	if !ok || len(out) < 2 {
		return out
	}

	// Extract keys once so extractors run O(n) times, not O(n log n).
	type keyed struct {
		record R
		key    Value
	}
	items := make([]keyed, len(out))
	uniform := true
	for i, r := range out {
		items[i] = keyed{record: r, key: col.Value(r)}
		if items[i].key.Kind() != items[0].key.Kind() {
			uniform = false
		}
	}

	compare := registry.comparatorFor(col.Comparator, items[0].key.Kind(), uniform)
	descending := spec.Direction == Descending

	sort.SliceStable(items, func(i, j int) bool {
		c := compare(items[i].key, items[j].key)
		if descending {
			c = -c
		}
		return c < 0
	})

	for i := range items {
		out[i] = items[i].record
	}
	return out
}
