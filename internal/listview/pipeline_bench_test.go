package listview

import (
	"testing"
)

// BenchmarkPipeline_Query benchmarks a search, sort and paginate pass over
// 10k records with a partial selection.
func BenchmarkPipeline_Query(b *testing.B) {
	b.ReportAllocs()
	records := numbered(10000)
	p := newTestPipeline()
	sel := NewSelection("id-1", "id-50", "id-9999")
	q := NewQueryState(DefaultPageSize)
	q.SearchText = "item-0"
	q.Sort = &SortSpec{Column: 3, Direction: Descending}

	b.ResetTimer()
	for range b.N {
		res := p.Query(records, q, sel)
		if res.TotalMatched == 0 {
			b.Fatal("expected matches")
		}
	}
}

// BenchmarkPipeline_SortByName benchmarks collated text sorting of 10k records.
func BenchmarkPipeline_SortByName(b *testing.B) {
	b.ReportAllocs()
	records := numbered(10000)
	p := newTestPipeline()
	q := NewQueryState(DefaultPageSize)
	q.Sort = &SortSpec{Column: 0, Direction: Ascending}

	b.ResetTimer()
	for range b.N {
		p.Query(records, q, nil)
	}
}
