package listview

import (
	"sort"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

// QueryState is the per-screen query: search text, sort, page and facets.
type QueryState struct {
	SearchText string `json:"search_text,omitempty" yaml:"search_text,omitempty"`

	// SearchColumn restricts the search to one searchable column.
	// Nil searches every searchable field.
	SearchColumn *int `json:"search_column,omitempty" yaml:"search_column,omitempty"`

	// Sort is nil when no sort column is set.
	Sort *SortSpec `json:"sort,omitempty" yaml:"sort,omitempty"`

	Page     int     `json:"page"             yaml:"page"`
	PageSize int     `json:"page_size"        yaml:"page_size"`
	Facets   []Facet `json:"facets,omitempty" yaml:"facets,omitempty"`
}

// NewQueryState returns the initial query for a screen: first page, no search
// and no sort.
func NewQueryState(pageSize int) QueryState {
	return QueryState{Page: DefaultPage, PageSize: NormalizePageSize(pageSize)}
}

// IsFiltered reports whether a search or facet narrows the records.
func (q QueryState) IsFiltered() bool {
	return q.SearchText != "" || len(q.Facets) > 0
}

// ViewResult is everything a presentation layer needs to render one page.
// It is recomputed on every query.
type ViewResult[R any] struct {
	// TotalMatched counts records after filtering, before pagination.
	TotalMatched int `json:"total_matched" yaml:"total_matched"`

	// Items is the current page, never nil.
	Items []R `json:"items" yaml:"items"`

	// AllSelectedOnPage is true when the page is non-empty and every row on it
	// is selected.
	AllSelectedOnPage bool `json:"all_selected_on_page" yaml:"all_selected_on_page"`

	// PartiallySelectedOnPage is true when some but not all rows are selected.
	PartiallySelectedOnPage bool `json:"partially_selected_on_page" yaml:"partially_selected_on_page"`

	Page          PageMeta `json:"page"           yaml:"page"`
	PageState     TriState `json:"page_state"     yaml:"page_state"`
	FilteredState TriState `json:"filtered_state" yaml:"filtered_state"`
	SelectedTotal int      `json:"selected_total" yaml:"selected_total"`

	// PageIDs are the ids of Items in order.
	PageIDs []string `json:"-" yaml:"-"`

	// FilteredIDs are the ids of every matched record in sorted order.
	FilteredIDs []string `json:"-" yaml:"-"`
}

// Pipeline runs queries for one table schema.
type Pipeline[R any] struct {
	schema   Schema[R]
	registry *Registry
	logger   zerolog.Logger
}

// NewPipeline creates a pipeline. A nil registry collates in English.
func NewPipeline[R any](schema Schema[R], registry *Registry, logger zerolog.Logger) *Pipeline[R] {
	if registry == nil {
		registry = NewRegistry(language.English)
	}
	return &Pipeline[R]{
		schema:   schema,
		registry: registry,
		logger:   logger.With().Str("component", "listview").Str("table", schema.Name).Logger(),
	}
}

// Schema returns the table schema.
func (p *Pipeline[R]) Schema() Schema[R] {
	return p.schema
}

// Registry returns the comparator registry.
func (p *Pipeline[R]) Registry() *Registry {
	return p.registry
}

// Query derives the visible page from records.
//
// Stages run in a fixed order: selected ids no longer present in records are
// pruned, then records are filtered, sorted and paginated. The filtered
// tri-state is computed before pagination and the page tri-state after it.
// Records are never modified. A nil sel is treated as an empty selection.
func (p *Pipeline[R]) Query(records []R, q QueryState, sel *Selection) ViewResult[R] {
	if sel == nil {
		sel = NewSelection()
	}

	pruned := sel.Retain(p.schema.IDs(records))

	filtered := Filter(records, q.SearchText, p.schema.SearchFields(q.SearchColumn))
	filtered = FilterFacets(filtered, q.Facets, p.schema)
	sorted := Sort(filtered, q.Sort, p.schema, p.registry)

	meta := NewPageMeta(q.Page, q.PageSize, len(sorted))
	start, end := meta.offsets()
	items := make([]R, end-start)
	copy(items, sorted[start:end])

	pageIDs := p.schema.IDs(items)
	filteredIDs := p.schema.IDs(sorted)
	pageState := sel.State(pageIDs)

	result := ViewResult[R]{
		TotalMatched:            len(sorted),
		Items:                   items,
		AllSelectedOnPage:       pageState == SelectedAll,
		PartiallySelectedOnPage: pageState == SelectedSome,
		Page:                    meta,
		PageState:               pageState,
		FilteredState:           sel.State(filteredIDs),
		SelectedTotal:           sel.Len(),
		PageIDs:                 pageIDs,
		FilteredIDs:             filteredIDs,
	}

	p.logger.Debug().
		Str("operation", "query").
		Int("records", len(records)).
		Int("matched", result.TotalMatched).
		Int("page", meta.CurrentPage).
		Int("page_size", meta.PageSize).
		Int("selected", result.SelectedTotal).
		Int("pruned", pruned).
		Msg("list view computed")

	return result
}

// Distinct returns the distinct text values of a column in collation order.
// List columns contribute each item. It backs facet menus.
func (p *Pipeline[R]) Distinct(records []R, column int) []string {
	col, ok := p.schema.Column(column)
	if !ok {
		return nil
	}

	seen := make(map[string]struct{})
	values := make([]string, 0)
	for _, r := range records {
		for _, item := range col.Value(r).Items() {
			if _, dup := seen[item]; dup || item == "" {
				continue
			}
			seen[item] = struct{}{}
			values = append(values, item)
		}
	}

	sort.SliceStable(values, func(i, j int) bool {
		return p.registry.CompareStrings(values[i], values[j]) < 0
	})
	return values
}
