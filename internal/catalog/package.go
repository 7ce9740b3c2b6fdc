package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/rshade/contentview/internal/listview"
)

// Package persistence and status values.
const (
	PersistencePersistent = "Persistent"
	PersistenceTransient  = "Transient"
	PackageUpgradable     = "Upgradable"
	PackageUpToDate       = "Up-to-date"
)

// Package is an installed package and its available upgrade.
type Package struct {
	ID               string `json:"id"                      yaml:"id"`
	Name             string `json:"name"                    yaml:"name"`
	Persistence      string `json:"persistence"             yaml:"persistence"`
	Status           string `json:"status"                  yaml:"status"`
	InstalledVersion string `json:"installed_version"       yaml:"installed_version"`
	UpgradableTo     string `json:"upgradable_to,omitempty" yaml:"upgradable_to,omitempty"`
}

// PackageCount is the number of generated packages.
const PackageCount = 50

//nolint:gochecknoglobals // Read-only fixture list.
var packageNames = []string{
	"nodejs", "react", "webpack", "typescript", "eslint", "babel", "prettier", "jest",
	"lodash", "axios", "express", "mongodb", "postgresql", "redis", "nginx", "docker",
	"kubernetes", "grafana", "prometheus", "jenkins", "git", "vim", "curl", "wget",
	"python", "pip", "numpy", "pandas", "flask", "django", "mysql", "sqlite",
	"apache", "tomcat", "maven", "gradle", "java", "spring", "hibernate", "junit",
	"php", "composer", "laravel", "symfony", "ruby", "rails", "bundler", "rspec",
	"go", "rust", "cargo",
}

// Packages generates n packages from rng. Names past the end of the name list
// repeat with a numeric suffix.
func Packages(rng *rand.Rand, n int) []Package {
	rows := make([]Package, n)
	for i := range rows {
		name := packageNames[i%len(packageNames)]
		if i >= len(packageNames) {
			name = fmt.Sprintf("%s-%d", name, i/len(packageNames)+1)
		}

		major := rng.IntN(10) + 1
		minor := rng.IntN(20)
		patch := rng.IntN(10)

		p := Package{
			ID:               fmt.Sprintf("pkg-%d", i+1),
			Name:             name,
			Status:           PackageUpToDate,
			InstalledVersion: fmt.Sprintf("%d.%d.%d", major, minor, patch),
		}
		if rng.Float64() > 0.6 {
			p.Status = PackageUpgradable
			p.UpgradableTo = fmt.Sprintf("%d.%d.%d", major, minor+rng.IntN(3)+1, patch)
		}
		p.Persistence = PersistenceTransient
		if rng.Float64() > 0.5 {
			p.Persistence = PersistencePersistent
		}
		rows[i] = p
	}
	return rows
}

// NewPackage returns an up-to-date transient package with a fresh id.
func NewPackage(name, version string) Package {
	return Package{
		ID:               NewID(),
		Name:             name,
		Persistence:      PersistenceTransient,
		Status:           PackageUpToDate,
		InstalledVersion: version,
	}
}

// PackageSchema describes the packages table. Versions sort semantically and
// are searchable alongside the name.
func PackageSchema() listview.Schema[Package] {
	return listview.Schema[Package]{
		Name: TablePackages,
		ID:   func(p Package) string { return p.ID },
		Columns: []listview.Column[Package]{
			{Label: "Package name", Value: func(p Package) listview.Value { return listview.StringValue(p.Name) }, Searchable: true, Sortable: true, Width: 24},
			{Label: "Persistence", Value: func(p Package) listview.Value { return listview.StringValue(p.Persistence) }, Sortable: true, Width: 12},
			{Label: "Status", Value: func(p Package) listview.Value { return listview.StringValue(p.Status) }, Sortable: true, Width: 11},
			{Label: "Installed version", Value: func(p Package) listview.Value { return listview.StringValue(p.InstalledVersion) }, Searchable: true, Sortable: true, Comparator: listview.ComparatorVersion, Width: 17},
			{Label: "Upgradable to", Value: func(p Package) listview.Value { return listview.StringValue(p.UpgradableTo) }, Searchable: true, Sortable: true, Comparator: listview.ComparatorVersion, Width: 14},
		},
	}
}
