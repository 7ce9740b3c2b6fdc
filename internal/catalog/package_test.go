package catalog

import (
	"math/rand/v2"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/contentview/internal/listview"
)

func TestPackages_Generation(t *testing.T) {
	rows := Packages(rand.New(rand.NewPCG(42, 2)), PackageCount)
	require.Len(t, rows, PackageCount)
	assert.Equal(t, "nodejs", rows[0].Name)
	assert.Equal(t, "pkg-50", rows[49].ID)

	for _, p := range rows {
		installed, err := semver.NewVersion(p.InstalledVersion)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, installed.Major(), uint64(1))
		assert.LessOrEqual(t, installed.Major(), uint64(10))
		assert.Less(t, installed.Minor(), uint64(20))

		switch p.Status {
		case PackageUpgradable:
			upgrade, err := semver.NewVersion(p.UpgradableTo)
			require.NoError(t, err)
			assert.True(t, upgrade.GreaterThan(installed), "%s -> %s", p.InstalledVersion, p.UpgradableTo)
		case PackageUpToDate:
			assert.Empty(t, p.UpgradableTo)
		default:
			t.Fatalf("unexpected status %q", p.Status)
		}
		assert.Contains(t, []string{PersistencePersistent, PersistenceTransient}, p.Persistence)
	}
}

func TestPackages_NameSuffixPastList(t *testing.T) {
	rows := Packages(rand.New(rand.NewPCG(1, 2)), 53)
	assert.Equal(t, "cargo", rows[50].Name)
	assert.Equal(t, "nodejs-2", rows[51].Name)
	assert.Equal(t, "react-2", rows[52].Name)
}

func TestPackageSchema_VersionSort(t *testing.T) {
	records := []Package{
		{ID: "a", Name: "a", InstalledVersion: "1.10.0"},
		{ID: "b", Name: "b", InstalledVersion: "1.9.3"},
		{ID: "c", Name: "c", InstalledVersion: "10.0.0"},
		{ID: "d", Name: "d", InstalledVersion: "2.0.1"},
	}
	p := newPipeline(PackageSchema())
	q := listview.NewQueryState(10)
	q.Sort = &listview.SortSpec{Column: 3}

	result := p.Query(records, q, nil)
	assert.Equal(t, []string{"b", "a", "d", "c"}, result.PageIDs)
}

func TestPackageSchema_StatusFacetAndSearch(t *testing.T) {
	rows := Packages(rand.New(rand.NewPCG(42, 2)), PackageCount)
	p := newPipeline(PackageSchema())

	q := listview.NewQueryState(100)
	q.Facets = []listview.Facet{{Column: 2, Value: PackageUpgradable}}
	upgradable := p.Query(rows, q, nil)
	for _, pkg := range upgradable.Items {
		assert.Equal(t, PackageUpgradable, pkg.Status)
	}

	q.SearchText = "nodejs"
	both := p.Query(rows, q, nil)
	assert.LessOrEqual(t, both.TotalMatched, 1)
}
