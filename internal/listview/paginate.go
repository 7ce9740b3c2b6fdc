package listview

// Pagination defaults and limits.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MinPageSize     = 1
)

// PageSizeOptions are the per-page choices offered by the page-size toggle.
//
//nolint:gochecknoglobals // Read-only option list.
var PageSizeOptions = []int{10, 20, 50, 100}

// PageMeta contains metadata about one page of results.
type PageMeta struct {
	CurrentPage int  `json:"current_page" yaml:"current_page"`
	PageSize    int  `json:"page_size"    yaml:"page_size"`
	TotalPages  int  `json:"total_pages"  yaml:"total_pages"`
	TotalItems  int  `json:"total_items"  yaml:"total_items"`
	FirstItem   int  `json:"first_item"   yaml:"first_item"`
	LastItem    int  `json:"last_item"    yaml:"last_item"`
	HasPrevious bool `json:"has_previous" yaml:"has_previous"`
	HasNext     bool `json:"has_next"     yaml:"has_next"`
}

// NormalizePageSize clamps a page size to at least MinPageSize.
// A non-positive page size is treated as 1 rather than rejected.
func NormalizePageSize(pageSize int) int {
	if pageSize < MinPageSize {
		return MinPageSize
	}
	return pageSize
}

// TotalPages returns the number of pages needed for total items.
// It is 0 when there are no items.
func TotalPages(total, pageSize int) int {
	pageSize = NormalizePageSize(pageSize)
	if total <= 0 {
		return 0
	}
	pages := total / pageSize
	if total%pageSize > 0 {
		pages++
	}
	return pages
}

// NewPageMeta computes the effective page for a request. Pages below 1 become
// 1 and pages past the end are capped to the last page, so a valid page is
// always returned when one exists.
func NewPageMeta(page, pageSize, total int) PageMeta {
	pageSize = NormalizePageSize(pageSize)
	totalPages := TotalPages(total, pageSize)

	current := page
	if current < DefaultPage {
		current = DefaultPage
	}
	if totalPages > 0 && current > totalPages {
		current = totalPages
	}
	if totalPages == 0 {
		current = DefaultPage
	}

	meta := PageMeta{
		CurrentPage: current,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasPrevious: current > 1,
		HasNext:     current < totalPages,
	}
	if total > 0 {
		meta.FirstItem = (current-1)*pageSize + 1
		meta.LastItem = min(current*pageSize, total)
	}
	return meta
}

// offsets returns the half-open window [start, end) for the page.
func (m PageMeta) offsets() (int, int) {
	if m.TotalItems == 0 {
		return 0, 0
	}
	return m.FirstItem - 1, m.LastItem
}

// Paginate returns the window of records for page. The page is clamped the
// same way as NewPageMeta. The result shares the backing array of records.
func Paginate[R any](records []R, page, pageSize int) []R {
	start, end := NewPageMeta(page, pageSize, len(records)).offsets()
	return records[start:end]
}
