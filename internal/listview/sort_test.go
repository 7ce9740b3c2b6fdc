package listview

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestSort_Packages(t *testing.T) {
	schema := repoSchema()
	registry := NewRegistry(language.English)

	got := Sort(repoFixtures(), &SortSpec{Column: 3, Direction: Ascending}, schema, registry)
	want := []string{
		"development-tools-repo",
		"rhel-8-for-x86_64-baseos-rpms",
		"rhel-9-for-x86_64-baseos-rpms",
		"rhel-8-for-x86_64-appstream-rpms",
		"rhel-9-for-x86_64-appstream-rpms",
		"custom-epel-repository",
	}
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("ascending mismatch (-want +got):\n%s", diff)
	}

	got = Sort(repoFixtures(), &SortSpec{Column: 3, Direction: Descending}, schema, registry)
	slices.Reverse(want)
	if diff := cmp.Diff(want, names(got)); diff != "" {
		t.Errorf("descending mismatch (-want +got):\n%s", diff)
	}
}

func TestSort_Unsorted(t *testing.T) {
	schema := repoSchema()
	registry := NewRegistry(language.English)
	records := repoFixtures()

	tests := []struct {
		name string
		spec *SortSpec
	}{
		{name: "nil spec", spec: nil},
		{name: "negative column", spec: &SortSpec{Column: -1}},
		{name: "column out of range", spec: &SortSpec{Column: 42}},
		{name: "column not sortable", spec: &SortSpec{Column: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sort(records, tt.spec, schema, registry)
			assert.Equal(t, names(records), names(got))
		})
	}
}

func TestSort_ReturnsCopy(t *testing.T) {
	records := repoFixtures()
	before := names(records)

	got := Sort(records, &SortSpec{Column: 0, Direction: Descending}, repoSchema(), NewRegistry(language.English))
	got[0] = repo{name: "changed"}

	assert.Equal(t, before, names(records))
}

func TestSort_Stable(t *testing.T) {
	schema := repoSchema()
	registry := NewRegistry(language.English)
	records := numbered(9)

	asc := Sort(records, &SortSpec{Column: 3, Direction: Ascending}, schema, registry)
	assert.Equal(t, []string{
		"item-01", "item-04", "item-07",
		"item-02", "item-05", "item-08",
		"item-03", "item-06", "item-09",
	}, names(asc))

	desc := Sort(records, &SortSpec{Column: 3, Direction: Descending}, schema, registry)
	assert.Equal(t, []string{
		"item-03", "item-06", "item-09",
		"item-02", "item-05", "item-08",
		"item-01", "item-04", "item-07",
	}, names(desc), "equal keys keep input order when descending")
}

func TestSort_ReverseDuality(t *testing.T) {
	schema := repoSchema()
	registry := NewRegistry(language.English)

	for _, col := range []int{0, 3} {
		asc := Sort(repoFixtures(), &SortSpec{Column: col, Direction: Ascending}, schema, registry)
		desc := Sort(repoFixtures(), &SortSpec{Column: col, Direction: Descending}, schema, registry)
		reversed := names(asc)
		slices.Reverse(reversed)
		assert.Equal(t, reversed, names(desc), "column %d", col)
	}
}

func TestSort_Collation(t *testing.T) {
	records := []repo{{id: "1", name: "cherry"}, {id: "2", name: "Banana"}, {id: "3", name: "apple"}}
	got := Sort(records, &SortSpec{Column: 0}, repoSchema(), NewRegistry(language.English))
	assert.Equal(t, []string{"apple", "Banana", "cherry"}, names(got))
}

func TestSort_ListColumn(t *testing.T) {
	got := Sort(repoFixtures(), &SortSpec{Column: 5}, repoSchema(), NewRegistry(language.English))
	assert.Equal(t, []string{
		"rhel-9-for-x86_64-appstream-rpms",
		"rhel-8-for-x86_64-appstream-rpms",
		"rhel-9-for-x86_64-baseos-rpms",
		"rhel-8-for-x86_64-baseos-rpms",
		"custom-epel-repository",
		"development-tools-repo",
	}, names(got))
}

type cell struct {
	id    string
	value Value
}

func TestSort_MixedKindsCoercedToText(t *testing.T) {
	schema := Schema[cell]{
		Name: "mixed",
		ID:   func(c cell) string { return c.id },
		Columns: []Column[cell]{
			{Label: "Value", Value: func(c cell) Value { return c.value }, Sortable: true},
		},
	}
	records := []cell{
		{id: "a", value: StringValue("abc")},
		{id: "b", value: IntValue(9)},
		{id: "c", value: StringValue("10")},
	}

	got := Sort(records, &SortSpec{Column: 0}, schema, NewRegistry(language.English))
	require.Len(t, got, 3)
	assert.Equal(t, []string{"c", "b", "a"}, schema.IDs(got))
}

func TestSort_VersionComparator(t *testing.T) {
	schema := Schema[cell]{
		Name: "versions",
		ID:   func(c cell) string { return c.id },
		Columns: []Column[cell]{
			{Label: "Version", Value: func(c cell) Value { return c.value }, Sortable: true, Comparator: ComparatorVersion},
		},
	}
	records := []cell{
		{id: "1.10.0", value: StringValue("1.10.0")},
		{id: "1.9.0", value: StringValue("1.9.0")},
		{id: "bogus", value: StringValue("bogus")},
		{id: "1.2.0", value: StringValue("1.2.0")},
	}

	got := Sort(records, &SortSpec{Column: 0}, schema, NewRegistry(language.English))
	assert.Equal(t, []string{"bogus", "1.2.0", "1.9.0", "1.10.0"}, schema.IDs(got))
}

func TestParseDirection(t *testing.T) {
	d, err := ParseDirection(" DESC ")
	require.NoError(t, err)
	assert.Equal(t, Descending, d)

	d, err = ParseDirection("asc")
	require.NoError(t, err)
	assert.Equal(t, Ascending, d)

	_, err = ParseDirection("sideways")
	require.ErrorIs(t, err, ErrInvalidSortOrder)

	assert.Equal(t, Ascending, Descending.Reverse())
	assert.Equal(t, "desc", Descending.String())
}

func TestDirection_TextRoundTrip(t *testing.T) {
	text, err := Descending.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "desc", string(text))

	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("DESC")))
	assert.Equal(t, Descending, d)
	require.ErrorIs(t, d.UnmarshalText([]byte("up")), ErrInvalidSortOrder)
}
