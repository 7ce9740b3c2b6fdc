package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/contentview/internal/listview"
)

// Validation limits.
const (
	DefaultPage      = listview.DefaultPage
	MinPage          = 1
	MaxPageSize      = 1000
	DefaultSortOrder = listview.SortOrderAsc
)

// Common validation errors.
var (
	ErrInvalidPageSize   = errors.New("page-size must be between 1 and 1000")
	ErrInvalidPage       = errors.New("page must be >= 1")
	ErrInvalidSortFormat = errors.New("invalid sort format: use 'column' or 'column:order' (e.g., 'packages:desc')")
	ErrEmptySortField    = errors.New("sort column cannot be empty")
	ErrInvalidFacet      = errors.New("invalid facet: use 'column=value' (e.g., 'status=Valid')")
	ErrUnknownColumn     = errors.New("unknown column")
	ErrNotSortable       = errors.New("column is not sortable")
	ErrNotSearchable     = errors.New("column is not searchable")
)

// ColumnResolver maps a column label or 0-based index to a column index.
type ColumnResolver interface {
	ColumnIndex(label string) (int, bool)
}

// SchemaInfo reports column capabilities. Resolvers that implement it get
// sortability and searchability checks.
type SchemaInfo interface {
	Sortable(column int) bool
	Searchable(column int) bool
}

// Params holds the list query flags.
type Params struct {
	// Page is the 1-based page number. Zero means the first page.
	Page int

	// PageSize is the number of rows per page. Zero means the configured default.
	PageSize int

	// Sort is a "column" or "column:order" expression. Empty means unsorted.
	Sort string

	// Search is the case-insensitive search text.
	Search string

	// SearchColumn restricts the search to one column. Empty searches all.
	SearchColumn string

	// Facets are "column=value" expressions.
	Facets []string

	// Select lists record ids to mark as selected.
	Select []string
}

// Validate checks numeric bounds. Column references are checked by Query.
func (p Params) Validate() error {
	if p.Page < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, p.Page)
	}
	if p.PageSize < 0 || p.PageSize > MaxPageSize {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, p.PageSize)
	}
	return nil
}

// sortPartsMax is the maximum number of parts in a sort string (column:order).
const sortPartsMax = 2

// ParseSort parses a sort string in the format "column" or "column:order".
// Examples: "name", "packages:desc", "3:asc".
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseSort(sortStr string) (column string, dir listview.Direction, err error) {
	parts := strings.Split(sortStr, ":")
	switch len(parts) {
	case 1:
		column = strings.TrimSpace(parts[0])
		dir = listview.Ascending
	case sortPartsMax:
		column = strings.TrimSpace(parts[0])
		dir, err = listview.ParseDirection(parts[1])
		if err != nil {
			return "", listview.Ascending, err
		}
	default:
		return "", listview.Ascending, fmt.Errorf("%w: %q", ErrInvalidSortFormat, sortStr)
	}

	if column == "" {
		return "", listview.Ascending, ErrEmptySortField
	}
	return column, dir, nil
}

// ParseFacet parses a "column=value" facet. The value may contain '='.
//
//nolint:nonamedreturns // Named returns improve readability for this multi-value function.
func ParseFacet(expr string) (column, value string, err error) {
	column, value, found := strings.Cut(expr, "=")
	column = strings.TrimSpace(column)
	if !found || column == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidFacet, expr)
	}
	return column, value, nil
}

// Query builds the query state for a table. defaultPageSize applies when
// PageSize is zero.
func (p Params) Query(cols ColumnResolver, defaultPageSize int) (listview.QueryState, error) {
	if err := p.Validate(); err != nil {
		return listview.QueryState{}, err
	}

	pageSize := p.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}
	q := listview.NewQueryState(pageSize)
	if p.Page > 0 {
		q.Page = p.Page
	}
	q.SearchText = p.Search
	info, _ := cols.(SchemaInfo)

	if p.SearchColumn != "" {
		idx, err := resolve(cols, p.SearchColumn)
		if err != nil {
			return listview.QueryState{}, err
		}
		if info != nil && !info.Searchable(idx) {
			return listview.QueryState{}, fmt.Errorf("%w: %q", ErrNotSearchable, p.SearchColumn)
		}
		q.SearchColumn = &idx
	}

	if p.Sort != "" {
		name, dir, err := ParseSort(p.Sort)
		if err != nil {
			return listview.QueryState{}, err
		}
		idx, err := resolve(cols, name)
		if err != nil {
			return listview.QueryState{}, err
		}
		if info != nil && !info.Sortable(idx) {
			return listview.QueryState{}, fmt.Errorf("%w: %q", ErrNotSortable, name)
		}
		q.Sort = &listview.SortSpec{Column: idx, Direction: dir}
	}

	for _, expr := range p.Facets {
		name, value, err := ParseFacet(expr)
		if err != nil {
			return listview.QueryState{}, err
		}
		idx, err := resolve(cols, name)
		if err != nil {
			return listview.QueryState{}, err
		}
		q.Facets = append(q.Facets, listview.Facet{Column: idx, Value: value})
	}

	return q, nil
}

func resolve(cols ColumnResolver, name string) (int, error) {
	idx, ok := cols.ColumnIndex(name)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	return idx, nil
}
