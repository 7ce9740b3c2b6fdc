package catalog

import (
	"fmt"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/rshade/contentview/internal/listview"
)

// Repository is an RPM repository known to the content service.
type Repository struct {
	ID                string `json:"id"                 yaml:"id"`
	Name              string `json:"name"               yaml:"name"`
	URL               string `json:"url"                yaml:"url"`
	Architecture      string `json:"architecture"       yaml:"architecture"`
	OSVersion         string `json:"os_version"         yaml:"os_version"`
	Packages          int    `json:"packages"           yaml:"packages"`
	LastIntrospection string `json:"last_introspection" yaml:"last_introspection"`
	Status            string `json:"status"             yaml:"status"`
}

// Repositories returns the custom repositories list.
func Repositories() []Repository {
	rows := []Repository{
		{Name: "rhel-9-for-x86_64-baseos-rpms", URL: "https://cdn.redhat.com/content/dist/rhel9/9/x86_64/baseos/os", Architecture: "x86_64", OSVersion: "RHEL9", Packages: 2847, LastIntrospection: "2 hours ago", Status: StatusValid},
		{Name: "rhel-9-for-x86_64-appstream-rpms", URL: "https://cdn.redhat.com/content/dist/rhel9/9/x86_64/appstream/os", Architecture: "x86_64", OSVersion: "RHEL9", Packages: 5926, LastIntrospection: "2 hours ago", Status: StatusValid},
		{Name: "rhel-8-for-x86_64-baseos-rpms", URL: "https://cdn.redhat.com/content/dist/rhel8/8/x86_64/baseos/os", Architecture: "x86_64", OSVersion: "RHEL 8", Packages: 1789, LastIntrospection: "4 hours ago", Status: StatusValid},
		{Name: "rhel-8-for-x86_64-appstream-rpms", URL: "https://cdn.redhat.com/content/dist/rhel8/8/x86_64/appstream/os", Architecture: "x86_64", OSVersion: "RHEL 8", Packages: 3421, LastIntrospection: "4 hours ago", Status: StatusValid},
		{Name: "custom-epel-repository", URL: "https://download.fedoraproject.org/pub/epel/9/Everything/x86_64/", Architecture: "Any", OSVersion: "Any", Packages: 12043, LastIntrospection: "1 day ago", Status: StatusInvalid},
		{Name: "development-tools-repo", URL: "https://internal.company.com/repos/dev-tools/", Architecture: "x86_64", OSVersion: "RHEL9", Packages: 567, LastIntrospection: "3 days ago", Status: StatusValid},
	}
	for i := range rows {
		rows[i].ID = fmt.Sprintf("repo-%d", i+1)
	}
	return rows
}

// popularRepositoryNames seeds the popular repositories table.
//
//nolint:gochecknoglobals // Read-only fixture list.
var popularRepositoryNames = []string{
	"rhel-9-for-x86_64-baseos-rpms",
	"rhel-9-for-x86_64-appstream-rpms",
	"rhel-8-for-x86_64-baseos-rpms",
	"rhel-8-for-x86_64-appstream-rpms",
	"epel-release",
	"epel-modular",
	"centos-stream-9-baseos",
	"centos-stream-9-appstream",
	"fedora-updates",
	"fedora-release",
	"docker-ce-stable",
	"kubernetes",
	"nodejs-16",
	"python39",
	"postgresql-13",
	"mysql-8.0",
	"nginx-stable",
	"apache-httpd",
	"java-11-openjdk",
	"golang-1.19",
}

// PopularBaseURL prefixes the URLs of generated popular repositories.
const PopularBaseURL = "https://cdn-ubi.redhat.com/content/public/"

// IntrospectionDateLayout formats generated introspection dates so that text
// order is chronological.
const IntrospectionDateLayout = "2006-01-02"

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// PopularRepositories generates the popular repositories table from rng.
// Introspection dates fall within the 30 days before now.
func PopularRepositories(rng *rand.Rand, now time.Time) []Repository {
	osVersions := []string{"RHEL9", "RHEL 8", "Any"}

	rows := make([]Repository, len(popularRepositoryNames))
	for i, name := range popularRepositoryNames {
		arch := "Any"
		if rng.Float64() > 0.3 {
			arch = "x86_64"
		}
		os := osVersions[rng.IntN(len(osVersions))]
		packages := rng.IntN(5000) + 100
		status := StatusValid
		if rng.Float64() > 0.8 {
			status = StatusInvalid
		}
		introspected := now.AddDate(0, 0, -rng.IntN(30))

		rows[i] = Repository{
			ID:                fmt.Sprintf("repo-%d", i+1),
			Name:              name,
			URL:               PopularBaseURL + nonAlphanumeric.ReplaceAllString(strings.ToLower(name), "-"),
			Architecture:      arch,
			OSVersion:         os,
			Packages:          packages,
			LastIntrospection: introspected.Format(IntrospectionDateLayout),
			Status:            status,
		}
	}
	return rows
}

// NewRepository returns a repository with a fresh id, as created by the add
// action. It has not been introspected yet.
func NewRepository(name, url string) Repository {
	return Repository{
		ID:                NewID(),
		Name:              name,
		URL:               url,
		Architecture:      "Any",
		OSVersion:         "Any",
		LastIntrospection: "never",
		Status:            StatusInvalid,
	}
}

// RepositorySchema describes the repository tables. Search covers the name and
// the URL shown beneath it.
func RepositorySchema(name string) listview.Schema[Repository] {
	return listview.Schema[Repository]{
		Name: name,
		ID:   func(r Repository) string { return r.ID },
		Columns: []listview.Column[Repository]{
			{Label: "Name", Value: func(r Repository) listview.Value { return listview.StringValue(r.Name) }, Searchable: true, Sortable: true, Width: 34},
			{Label: "Architecture", Value: func(r Repository) listview.Value { return listview.StringValue(r.Architecture) }, Sortable: true, Width: 12},
			{Label: "OS version", Value: func(r Repository) listview.Value { return listview.StringValue(r.OSVersion) }, Sortable: true, Width: 10},
			{Label: "Packages", Value: func(r Repository) listview.Value { return listview.IntValue(r.Packages) }, Sortable: true, Width: 9},
			{Label: "Last introspection", Value: func(r Repository) listview.Value { return listview.StringValue(r.LastIntrospection) }, Sortable: true, Width: 18},
			statusColumn(func(r Repository) string { return r.Status }),
		},
		SearchOnly: []listview.Field[Repository]{
			{Name: "URL", Value: func(r Repository) listview.Value { return listview.StringValue(r.URL) }},
		},
	}
}
