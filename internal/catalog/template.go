package catalog

import (
	"fmt"

	"github.com/rshade/contentview/internal/listview"
)

// Template statuses.
const (
	StatusValid   = "Valid"
	StatusInvalid = "Invalid"
)

// SnapshotLatest is the snapshot date of templates that track the newest content.
const SnapshotLatest = "Use latest"

// Template is a content template pinning repositories to a snapshot.
type Template struct {
	ID           string `json:"id"              yaml:"id"`
	Name         string `json:"name"            yaml:"name"`
	Description  string `json:"description"     yaml:"description"`
	Architecture string `json:"architecture"    yaml:"architecture"`
	Version      string `json:"version"         yaml:"version"`
	SnapshotDate string `json:"snapshot_date"   yaml:"snapshot_date"`
	Status       string `json:"status"          yaml:"status"`
	Hosts        int    `json:"hosts,omitempty" yaml:"hosts,omitempty"`
}

// ContentTemplates returns the templates of the content overview, with hosts.
func ContentTemplates() []Template {
	rows := []Template{
		{Name: "Production Security Updates", Description: "Security patches for production environments", Architecture: "x86_64", Version: "el9", SnapshotDate: SnapshotLatest, Status: StatusValid, Hosts: 5},
		{Name: "Database Server Baseline", Description: "Baseline configuration for database servers", Architecture: "aarch64", Version: "el9", SnapshotDate: SnapshotLatest, Status: StatusValid, Hosts: 12},
		{Name: "Web Server Standard", Description: "Standard configuration for web servers", Architecture: "x86_64", Version: "el9", SnapshotDate: SnapshotLatest, Status: StatusValid, Hosts: 8},
		{Name: "Development Environment", Description: "Development and testing environment template", Architecture: "x86_64", Version: "el8", SnapshotDate: "06 Mar 2025", Status: StatusValid, Hosts: 3},
		{Name: "Infrastructure Services", Description: "Template for infrastructure and monitoring services", Architecture: "x86_64", Version: "el8", SnapshotDate: "07 May 2025", Status: StatusValid, Hosts: 15},
		{Name: "Legacy Systems", Description: "Template for legacy system support", Architecture: "x86_64", Version: "el8", SnapshotDate: "02 Mar 2025", Status: StatusInvalid, Hosts: 0},
	}
	return numberTemplates(rows)
}

// Templates returns the templates of the template management page.
func Templates() []Template {
	rows := []Template{
		{Name: "fhgvijknm", Architecture: "x86_64", Version: "el9", SnapshotDate: SnapshotLatest, Status: StatusValid},
		{Name: "fgcvhbjknml", Architecture: "aarch64", Version: "el9", SnapshotDate: SnapshotLatest, Status: StatusValid},
		{Name: "fghvbjnm", Architecture: "x86_64", Version: "el9", SnapshotDate: SnapshotLatest, Status: StatusValid},
		{Name: "Test-template-fBrt", Description: "Test template", Architecture: "x86_64", Version: "el8", SnapshotDate: "06 Mar 2025", Status: StatusValid},
		{Name: "test2", Architecture: "x86_64", Version: "el8", SnapshotDate: "07 May 2025", Status: StatusValid},
		{Name: "dd", Description: "dd", Architecture: "x86_64", Version: "el8", SnapshotDate: "09 Mar 2025", Status: StatusValid},
		{Name: "efjew", Architecture: "x86_64", Version: "el8", SnapshotDate: "05 Mar 2025", Status: StatusValid},
		{Name: "n", Architecture: "x86_64", Version: "el8", SnapshotDate: "02 Mar 2025", Status: StatusInvalid},
		{Name: "Test-template-VJuj", Description: "Test template", Architecture: "x86_64", Version: "el8", SnapshotDate: "06 Mar 2025", Status: StatusValid},
		{Name: "Test-template-wNoe", Description: "Test template", Architecture: "x86_64", Version: "el8", SnapshotDate: "06 Mar 2025", Status: StatusValid},
		{Name: "sdw", Description: "ds", Architecture: "aarch64", Version: "el8", SnapshotDate: "09 Dec 2024", Status: StatusInvalid},
	}
	return numberTemplates(rows)
}

func numberTemplates(rows []Template) []Template {
	for i := range rows {
		rows[i].ID = fmt.Sprintf("template-%d", i+1)
	}
	return rows
}

// NewTemplate returns a valid template with a fresh id, as created by the
// add action.
func NewTemplate(name string) Template {
	return Template{
		ID:           NewID(),
		Name:         name,
		Architecture: "x86_64",
		Version:      "el9",
		SnapshotDate: SnapshotLatest,
		Status:       StatusValid,
	}
}

func templateID(t Template) string { return t.ID }

func templateColumns() []listview.Column[Template] {
	return []listview.Column[Template]{
		{Label: "Name", Value: func(t Template) listview.Value { return listview.StringValue(t.Name) }, Searchable: true, Sortable: true, Width: 30},
		{Label: "Description", Value: func(t Template) listview.Value { return listview.StringValue(t.Description) }, Searchable: true, Sortable: true, Width: 40},
		{Label: "Architecture", Value: func(t Template) listview.Value { return listview.StringValue(t.Architecture) }, Sortable: true, Width: 12},
		{Label: "Version", Value: func(t Template) listview.Value { return listview.StringValue(t.Version) }, Sortable: true, Width: 8},
		{Label: "Snapshot date", Value: func(t Template) listview.Value { return listview.StringValue(t.SnapshotDate) }, Sortable: true, Width: 14},
	}
}

func statusColumn[R any](status func(R) string) listview.Column[R] {
	return listview.Column[R]{
		Label:    "Status",
		Value:    func(r R) listview.Value { return listview.StringValue(status(r)) },
		Sortable: true,
		Width:    8,
	}
}

// ContentSchema describes the content overview table: the template columns
// followed by Hosts and Status.
func ContentSchema() listview.Schema[Template] {
	cols := templateColumns()
	cols = append(cols,
		listview.Column[Template]{Label: "Hosts", Value: func(t Template) listview.Value { return listview.IntValue(t.Hosts) }, Sortable: true, Width: 6},
		statusColumn(func(t Template) string { return t.Status }),
	)
	return listview.Schema[Template]{Name: TableContent, ID: templateID, Columns: cols}
}

// TemplateSchema describes the template management table.
func TemplateSchema() listview.Schema[Template] {
	cols := append(templateColumns(), statusColumn(func(t Template) string { return t.Status }))
	return listview.Schema[Template]{Name: TableTemplates, ID: templateID, Columns: cols}
}
