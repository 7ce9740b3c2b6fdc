package listview

import (
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/text/language"
)

type repo struct {
	id       string
	name     string
	url      string
	arch     string
	os       string
	packages int
	status   string
	tags     []string
}

func repoSchema() Schema[repo] {
	return Schema[repo]{
		Name: "repositories",
		ID:   func(r repo) string { return r.id },
		Columns: []Column[repo]{
			{Label: "Name", Value: func(r repo) Value { return StringValue(r.name) }, Searchable: true, Sortable: true},
			{Label: "Architecture", Value: func(r repo) Value { return StringValue(r.arch) }, Sortable: true},
			{Label: "OS", Value: func(r repo) Value { return StringValue(r.os) }, Sortable: true},
			{Label: "Packages", Value: func(r repo) Value { return IntValue(r.packages) }, Sortable: true},
			{Label: "Status", Value: func(r repo) Value { return StringValue(r.status) }, Sortable: true},
			{Label: "Tags", Value: func(r repo) Value { return ListValue(r.tags...) }, Searchable: true, Sortable: true},
			{Label: "Notes", Value: func(r repo) Value { return StringValue(r.status) }},
		},
		SearchOnly: []Field[repo]{
			{Name: "URL", Value: func(r repo) Value { return StringValue(r.url) }},
		},
	}
}

func repoFixtures() []repo {
	return []repo{
		{id: "repo-1", name: "rhel-9-for-x86_64-baseos-rpms", url: "https://cdn.redhat.com/content/dist/rhel9/9/x86_64/baseos/os", arch: "x86_64", os: "RHEL9", packages: 2847, status: "Valid", tags: []string{"baseos"}},
		{id: "repo-2", name: "rhel-9-for-x86_64-appstream-rpms", url: "https://cdn.redhat.com/content/dist/rhel9/9/x86_64/appstream/os", arch: "x86_64", os: "RHEL9", packages: 5926, status: "Valid", tags: []string{"appstream"}},
		{id: "repo-3", name: "rhel-8-for-x86_64-baseos-rpms", url: "https://cdn.redhat.com/content/dist/rhel8/8/x86_64/baseos/os", arch: "x86_64", os: "RHEL 8", packages: 1789, status: "Valid", tags: []string{"baseos"}},
		{id: "repo-4", name: "rhel-8-for-x86_64-appstream-rpms", url: "https://cdn.redhat.com/content/dist/rhel8/8/x86_64/appstream/os", arch: "x86_64", os: "RHEL 8", packages: 3421, status: "Valid", tags: []string{"appstream"}},
		{id: "repo-5", name: "custom-epel-repository", url: "https://download.fedoraproject.org/pub/epel/9/Everything/x86_64/", arch: "Any", os: "Any", packages: 12043, status: "Invalid", tags: []string{"custom", "epel"}},
		{id: "repo-6", name: "development-tools-repo", url: "https://internal.company.com/repos/dev-tools/", arch: "x86_64", os: "RHEL9", packages: 567, status: "Valid", tags: []string{"tooling"}},
	}
}

// numbered returns n records named item-01..item-n with ids id-1..id-n.
func numbered(n int) []repo {
	out := make([]repo, n)
	for i := range out {
		out[i] = repo{
			id:       fmt.Sprintf("id-%d", i+1),
			name:     fmt.Sprintf("item-%02d", i+1),
			packages: i % 3,
			status:   "Valid",
		}
	}
	return out
}

func newTestPipeline() *Pipeline[repo] {
	return NewPipeline(repoSchema(), NewRegistry(language.English), zerolog.Nop())
}

func names(records []repo) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.name
	}
	return out
}

func intPtr(i int) *int { return &i }
