// Package pagination parses the list query flags shared by CLI commands.
//
// This package turns command-line flags into a listview.QueryState:
//   - Params: page, page size, sort, search and facet flags with validation
//   - ParseSort: "column" or "column:order" sort expressions
//   - ParseFacet: "column=value" facet expressions
//
// Column references accept a column label (case-insensitive) or a 0-based
// column index, so the same flags work for every table.
package pagination
