package catalog

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentview/internal/listview"
)

func newTestRegistry() *Registry {
	return NewRegistry(Options{
		Seed:   42,
		Now:    time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		Logger: zerolog.Nop(),
	})
}

func TestRegistry_Names(t *testing.T) {
	r := newTestRegistry()
	assert.Equal(t, []string{
		TableContent, TableTemplates, TableRepositories, TablePopular, TableSystems, TablePackages,
	}, r.Names())

	infos := r.Infos()
	require.Len(t, infos, 6)
	rows := map[string]int{}
	for _, info := range infos {
		rows[info.Key] = info.Rows
	}
	assert.Equal(t, map[string]int{
		TableContent: 6, TableTemplates: 11, TableRepositories: 6,
		TablePopular: 20, TableSystems: 8, TablePackages: 50,
	}, rows)
}

func TestRegistry_Lookup(t *testing.T) {
	r := newTestRegistry()

	q, err := r.Lookup(" Repositories ")
	require.NoError(t, err)
	assert.Equal(t, TableRepositories, q.Info().Key)

	_, err = r.Lookup("widgets")
	require.ErrorIs(t, err, ErrUnknownTable)
	assert.Contains(t, err.Error(), "packages")

	info, err := r.Describe(TableSystems)
	require.NoError(t, err)
	assert.Equal(t, "Tags", info.Columns[1])
}

func TestRegistry_Deterministic(t *testing.T) {
	a := newTestRegistry()
	b := newTestRegistry()
	assert.Equal(t, a.Packages.Records, b.Packages.Records)
	assert.Equal(t, a.Popular.Records, b.Popular.Records)
}

func TestTable_ColumnIndex(t *testing.T) {
	r := newTestRegistry()

	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{label: "Packages", want: 3, ok: true},
		{label: "os version", want: 2, ok: true},
		{label: "4", want: 4, ok: true},
		{label: "6", want: -1, ok: false},
		{label: "-1", want: -1, ok: false},
		{label: "bogus", want: -1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			got, ok := r.Repositories.ColumnIndex(tt.label)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTable_Query(t *testing.T) {
	r := newTestRegistry()
	q := listview.NewQueryState(4)
	q.Page = 5
	q.Sort = &listview.SortSpec{Column: 3, Direction: listview.Descending}

	page := r.Repositories.Query(q, []string{"repo-3", "repo-6", "gone"})

	assert.Equal(t, 6, page.TotalMatched)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.Equal(t, 2, page.Query.Page)
	assert.Equal(t, []string{"repo-3", "repo-6"}, page.IDs)
	assert.Equal(t, listview.SelectedAll, page.PageState)
	assert.Equal(t, listview.SelectedSome, page.FilteredState)
	assert.Equal(t, 2, page.SelectedTotal)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, []string{"rhel-8-for-x86_64-baseos-rpms", "x86_64", "RHEL 8", "1789", "4 hours ago", "Valid"}, page.Rows[0])

	items, ok := page.Items.([]Repository)
	require.True(t, ok)
	assert.Equal(t, "development-tools-repo", items[1].Name)
}

func TestTable_ControllerCopiesRecords(t *testing.T) {
	r := newTestRegistry()
	c := r.Content.Controller(20)
	c.Remove("template-1")

	assert.Len(t, c.Records(), 5)
	assert.Len(t, r.Content.Records, 6)
}

func TestTable_ColumnCapabilities(t *testing.T) {
	r := newTestRegistry()

	assert.True(t, r.Systems.Searchable(0))
	assert.False(t, r.Systems.Searchable(1))
	assert.True(t, r.Systems.Sortable(1))
	assert.False(t, r.Systems.Sortable(99))
	assert.False(t, r.Systems.Searchable(-1))
}
