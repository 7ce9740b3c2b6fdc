package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPageMeta(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		total    int
		want     PageMeta
	}{
		{
			name: "first page", page: 1, pageSize: 10, total: 50,
			want: PageMeta{CurrentPage: 1, PageSize: 10, TotalPages: 5, TotalItems: 50, FirstItem: 1, LastItem: 10, HasNext: true},
		},
		{
			name: "middle page", page: 3, pageSize: 10, total: 50,
			want: PageMeta{CurrentPage: 3, PageSize: 10, TotalPages: 5, TotalItems: 50, FirstItem: 21, LastItem: 30, HasPrevious: true, HasNext: true},
		},
		{
			name: "partial last page", page: 3, pageSize: 20, total: 50,
			want: PageMeta{CurrentPage: 3, PageSize: 20, TotalPages: 3, TotalItems: 50, FirstItem: 41, LastItem: 50, HasPrevious: true},
		},
		{
			name: "page past end clamps to last page", page: 9, pageSize: 20, total: 50,
			want: PageMeta{CurrentPage: 3, PageSize: 20, TotalPages: 3, TotalItems: 50, FirstItem: 41, LastItem: 50, HasPrevious: true},
		},
		{
			name: "page below one", page: -4, pageSize: 20, total: 6,
			want: PageMeta{CurrentPage: 1, PageSize: 20, TotalPages: 1, TotalItems: 6, FirstItem: 1, LastItem: 6},
		},
		{
			name: "zero page size clamps to one", page: 2, pageSize: 0, total: 3,
			want: PageMeta{CurrentPage: 2, PageSize: 1, TotalPages: 3, TotalItems: 3, FirstItem: 2, LastItem: 2, HasPrevious: true, HasNext: true},
		},
		{
			name: "empty", page: 4, pageSize: 20, total: 0,
			want: PageMeta{CurrentPage: 1, PageSize: 20},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewPageMeta(tt.page, tt.pageSize, tt.total))
		})
	}
}

func TestNormalizePageSize(t *testing.T) {
	assert.Equal(t, 1, NormalizePageSize(-5))
	assert.Equal(t, 1, NormalizePageSize(0))
	assert.Equal(t, 1, NormalizePageSize(1))
	assert.Equal(t, 50, NormalizePageSize(50))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 7, TotalPages(7, -1))
}

func TestPaginate(t *testing.T) {
	records := numbered(50)

	page := Paginate(records, 2, 20)
	assert.Len(t, page, 20)
	assert.Equal(t, "item-21", page[0].name)

	assert.Len(t, Paginate(records, 3, 20), 10)
	assert.Equal(t, Paginate(records, 3, 20), Paginate(records, 99, 20))
	assert.Empty(t, Paginate([]repo{}, 1, 20))
	assert.Len(t, Paginate(records, 1, 0), 1)
}

// Concatenating every page reproduces the input, and no page is larger than
// the page size.
func TestPaginate_Coverage(t *testing.T) {
	for n := 0; n <= 45; n++ {
		records := numbered(n)
		for size := 1; size <= 7; size++ {
			var joined []repo
			for p := 1; p <= TotalPages(n, size); p++ {
				page := Paginate(records, p, size)
				assert.LessOrEqual(t, len(page), size)
				joined = append(joined, page...)
			}
			assert.Equal(t, names(records), names(joined), "n=%d size=%d", n, size)
		}
	}
}
