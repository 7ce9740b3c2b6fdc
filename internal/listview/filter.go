package listview

import (
	"strings"

	"golang.org/x/text/cases"
)

// Facet restricts a view to records whose column text equals Value, ignoring
// case. For list columns any item may match.
type Facet struct {
	Column int    `json:"column" yaml:"column"`
	Value  string `json:"value"  yaml:"value"`
}

// Filter returns the records matching searchText against the given fields.
//
// An empty searchText returns records unchanged. Otherwise a record is kept
// when the case-folded search text is a substring of at least one field.
// Strings are matched directly, numbers through their decimal text form and
// lists item by item. The input slice is never modified.
func Filter[R any](records []R, searchText string, fields []Field[R]) []R {
	if searchText == "" {
		return records
	}

	folder := cases.Fold()
	needle := folder.String(searchText)

	matched := make([]R, 0, len(records))
	for _, r := range records {
		for _, f := range fields {
			if valueContains(f.Value(r), needle, folder) {
				matched = append(matched, r)
				break
			}
		}
	}
	return matched
}

// valueContains reports whether any text of v contains the folded needle.
func valueContains(v Value, needle string, folder cases.Caser) bool {
	if v.Kind() == KindList {
		for _, item := range v.list {
			if strings.Contains(folder.String(item), needle) {
				return true
			}
		}
		return false
	}
	return strings.Contains(folder.String(v.String()), needle)
}

// FilterFacets keeps records matching every facet. Facets naming a column
// outside the schema are ignored. No facets returns records unchanged.
func FilterFacets[R any](records []R, facets []Facet, schema Schema[R]) []R {
	active := make([]Facet, 0, len(facets))
	for _, f := range facets {
		if _, ok := schema.Column(f.Column); ok {
			active = append(active, f)
		}
	}
	if len(active) == 0 {
		return records
	}

	matched := make([]R, 0, len(records))
	for _, r := range records {
		if matchesFacets(r, active, schema) {
			matched = append(matched, r)
		}
	}
	return matched
}

func matchesFacets[R any](r R, facets []Facet, schema Schema[R]) bool {
	for _, f := range facets {
		v := schema.Columns[f.Column].Value(r)
		hit := false
		for _, item := range v.Items() {
			if strings.EqualFold(item, f.Value) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}
