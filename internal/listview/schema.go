package listview

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSchema is returned by Schema.Validate for incomplete descriptors.
var ErrInvalidSchema = errors.New("invalid table schema")

// Column describes one visible table column. Columns are addressed by their
// 0-based position in Schema.Columns.
type Column[R any] struct {
	// Label is the header text, also accepted by ColumnIndex.
	Label string

	// Value extracts the cell for a record.
	Value func(R) Value

	// Searchable includes the column in free-text search. Numeric columns are
	// searched through their decimal text form only when marked searchable.
	Searchable bool

	// Sortable allows sorting by the column. A sort request on a column that is
	// not sortable is treated as no sort.
	Sortable bool

	// Comparator names a comparator registered in the Registry. Empty selects
	// the default for the column's value kind.
	Comparator string

	// Width is a display hint for table renderers.
	Width int
}

// Field is a searchable value that is not rendered as a column,
// e.g. a repository URL shown under its name.
type Field[R any] struct {
	Name  string
	Value func(R) Value
}

// Schema is the data-driven description of one table.
type Schema[R any] struct {
	// Name identifies the table in logs.
	Name string

	// ID returns the stable, unique identifier of a record.
	ID func(R) string

	// Columns is the ordered list of visible columns.
	Columns []Column[R]

	// SearchOnly lists extra searchable fields that have no column.
	SearchOnly []Field[R]
}

// Validate checks that the schema can drive a pipeline.
func (s Schema[R]) Validate() error {
	if s.ID == nil {
		return fmt.Errorf("%w: %q has no id accessor", ErrInvalidSchema, s.Name)
	}
	for i, c := range s.Columns {
		if c.Label == "" {
			return fmt.Errorf("%w: %q column %d has no label", ErrInvalidSchema, s.Name, i)
		}
		if c.Value == nil {
			return fmt.Errorf("%w: %q column %q has no extractor", ErrInvalidSchema, s.Name, c.Label)
		}
	}
	for _, f := range s.SearchOnly {
		if f.Value == nil {
			return fmt.Errorf("%w: %q field %q has no extractor", ErrInvalidSchema, s.Name, f.Name)
		}
	}
	return nil
}

// Column returns the column at index, or false when index is out of range.
func (s Schema[R]) Column(index int) (Column[R], bool) {
	if index < 0 || index >= len(s.Columns) {
		return Column[R]{}, false
	}
	return s.Columns[index], true
}

// ColumnIndex finds a column by label, ignoring case.
func (s Schema[R]) ColumnIndex(label string) (int, bool) {
	for i, c := range s.Columns {
		if strings.EqualFold(c.Label, strings.TrimSpace(label)) {
			return i, true
		}
	}
	return -1, false
}

// Labels returns the column headers in order.
func (s Schema[R]) Labels() []string {
	labels := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		labels[i] = c.Label
	}
	return labels
}

// IDs maps records to their identifiers, preserving order.
func (s Schema[R]) IDs(records []R) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = s.ID(r)
	}
	return ids
}

// SearchFields returns the fields consulted by free-text search. When column
// points at a searchable column only that column is searched; otherwise every
// searchable column plus the search-only fields are used.
func (s Schema[R]) SearchFields(column *int) []Field[R] {
	if column != nil {
		if c, ok := s.Column(*column); ok && c.Searchable {
			return []Field[R]{{Name: c.Label, Value: c.Value}}
		}
	}

	fields := make([]Field[R], 0, len(s.Columns)+len(s.SearchOnly))
	for _, c := range s.Columns {
		if c.Searchable {
			fields = append(fields, Field[R]{Name: c.Label, Value: c.Value})
		}
	}
	return append(fields, s.SearchOnly...)
}

// sortColumn resolves a sort request to a sortable column.
func (s Schema[R]) sortColumn(spec *SortSpec) (Column[R], bool) {
	if spec == nil {
		return Column[R]{}, false
	}
	c, ok := s.Column(spec.Column)
	if !ok || !c.Sortable {
		return Column[R]{}, false
	}
	return c, true
}
