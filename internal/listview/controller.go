package listview

// Controller owns the state of one list screen: the records, the query and the
// selection. Every user action is a method that updates the state; View
// recomputes the page. A Controller is driven from a single goroutine.
type Controller[R any] struct {
	pipeline  *Pipeline[R]
	records   []R
	query     QueryState
	selection *Selection
}

// NewController creates a controller over records with the given page size.
func NewController[R any](pipeline *Pipeline[R], records []R, pageSize int) *Controller[R] {
	return &Controller[R]{
		pipeline:  pipeline,
		records:   records,
		query:     NewQueryState(pageSize),
		selection: NewSelection(),
	}
}

// View runs the pipeline for the current state. The effective page is written
// back so that a page clamped past the end stays clamped.
func (c *Controller[R]) View() ViewResult[R] {
	result := c.pipeline.Query(c.records, c.query, c.selection)
	c.query.Page = result.Page.CurrentPage
	return result
}

// Schema returns the table schema.
func (c *Controller[R]) Schema() Schema[R] {
	return c.pipeline.Schema()
}

// Pipeline returns the underlying pipeline.
func (c *Controller[R]) Pipeline() *Pipeline[R] {
	return c.pipeline
}

// Query returns a copy of the current query state.
func (c *Controller[R]) Query() QueryState {
	q := c.query
	q.Facets = append([]Facet(nil), c.query.Facets...)
	return q
}

// SetQuery replaces the query state.
func (c *Controller[R]) SetQuery(q QueryState) {
	q.PageSize = NormalizePageSize(q.PageSize)
	if q.Page < DefaultPage {
		q.Page = DefaultPage
	}
	c.query = q
}

// Selection returns the selection tracker.
func (c *Controller[R]) Selection() *Selection {
	return c.selection
}

// Records returns the unfiltered records.
func (c *Controller[R]) Records() []R {
	return c.records
}

// SetSearch changes the search text and returns to the first page.
func (c *Controller[R]) SetSearch(text string) {
	if c.query.SearchText == text {
		return
	}
	c.query.SearchText = text
	c.query.Page = DefaultPage
}

// SetSearchColumn limits the search to one column; nil searches all.
func (c *Controller[R]) SetSearchColumn(column *int) {
	c.query.SearchColumn = column
	c.query.Page = DefaultPage
}

// SortBy sorts by column. Sorting by the active column flips the direction;
// a new column starts ascending.
func (c *Controller[R]) SortBy(column int) {
	if s := c.query.Sort; s != nil && s.Column == column {
		s.Direction = s.Direction.Reverse()
		return
	}
	c.query.Sort = &SortSpec{Column: column, Direction: Ascending}
}

// SetSort replaces the sort; nil clears it.
func (c *Controller[R]) SetSort(spec *SortSpec) {
	if spec == nil {
		c.query.Sort = nil
		return
	}
	cp := *spec
	c.query.Sort = &cp
}

// SetPage moves to page. Out-of-range pages are clamped by View.
func (c *Controller[R]) SetPage(page int) {
	if page < DefaultPage {
		page = DefaultPage
	}
	c.query.Page = page
}

// NextPage advances one page when there is one.
func (c *Controller[R]) NextPage() {
	if c.View().Page.HasNext {
		c.query.Page++
	}
}

// PrevPage goes back one page when there is one.
func (c *Controller[R]) PrevPage() {
	if c.query.Page > DefaultPage {
		c.query.Page--
	}
}

// SetPageSize changes the page size and returns to the first page.
func (c *Controller[R]) SetPageSize(size int) {
	c.query.PageSize = NormalizePageSize(size)
	c.query.Page = DefaultPage
}

// CyclePageSize moves to the next larger entry of PageSizeOptions, wrapping
// to the smallest, and returns the new size.
func (c *Controller[R]) CyclePageSize() int {
	next := PageSizeOptions[0]
	for _, size := range PageSizeOptions {
		if size > c.query.PageSize {
			next = size
			break
		}
	}
	c.SetPageSize(next)
	return next
}

// AddFacet restricts the view to records whose column equals value. An existing
// facet on the same column is replaced.
func (c *Controller[R]) AddFacet(f Facet) {
	c.ClearFacet(f.Column)
	c.query.Facets = append(c.query.Facets, f)
	c.query.Page = DefaultPage
}

// ClearFacet removes the facet on column.
func (c *Controller[R]) ClearFacet(column int) {
	kept := c.query.Facets[:0:0]
	for _, f := range c.query.Facets {
		if f.Column != column {
			kept = append(kept, f)
		}
	}
	c.query.Facets = kept
	c.query.Page = DefaultPage
}

// ClearFilters removes the search text, search column and facets. Sort, page
// size and selection are kept.
func (c *Controller[R]) ClearFilters() {
	c.query.SearchText = ""
	c.query.SearchColumn = nil
	c.query.Facets = nil
	c.query.Page = DefaultPage
}

// SelectPage adds every row of the current page to the selection.
func (c *Controller[R]) SelectPage() int {
	ids := c.View().PageIDs
	c.selection.SelectAllIn(ids)
	return len(ids)
}

// SelectAllFiltered adds every matched row, across all pages, to the selection.
func (c *Controller[R]) SelectAllFiltered() int {
	ids := c.View().FilteredIDs
	c.selection.SelectAllIn(ids)
	return len(ids)
}

// SelectNone clears the selection.
func (c *Controller[R]) SelectNone() {
	c.selection.SelectNone()
}

// ToggleRow flips the selection of the record with id.
func (c *Controller[R]) ToggleRow(id string) bool {
	selected := !c.selection.IsSelected(id)
	c.selection.Toggle(id, selected)
	return selected
}

// TogglePage selects the page when it is not fully selected and clears the
// page rows otherwise, like a header checkbox.
func (c *Controller[R]) TogglePage() {
	view := c.View()
	if view.AllSelectedOnPage {
		for _, id := range view.PageIDs {
			c.selection.Toggle(id, false)
		}
		return
	}
	c.selection.SelectAllIn(view.PageIDs)
}

// SetRecords replaces the source records and prunes the selection.
func (c *Controller[R]) SetRecords(records []R) {
	c.records = records
	c.selection.Retain(c.Schema().IDs(records))
}

// Add appends a record.
func (c *Controller[R]) Add(r R) {
	c.records = append(c.records, r)
}

// Remove deletes the records with the given ids and returns how many were
// removed. Removed ids leave the selection.
func (c *Controller[R]) Remove(ids ...string) int {
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	schema := c.Schema()
	kept := make([]R, 0, len(c.records))
	for _, r := range c.records {
		if _, ok := drop[schema.ID(r)]; !ok {
			kept = append(kept, r)
		}
	}
	removed := len(c.records) - len(kept)
	c.SetRecords(kept)
	return removed
}

// Find returns the record with id.
func (c *Controller[R]) Find(id string) (R, bool) {
	schema := c.Schema()
	for _, r := range c.records {
		if schema.ID(r) == id {
			return r, true
		}
	}
	var zero R
	return zero, false
}
