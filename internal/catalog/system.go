package catalog

import (
	"fmt"

	"github.com/rshade/contentview/internal/listview"
)

// System is a host assigned to a content template.
type System struct {
	ID                    string   `json:"id"                     yaml:"id"`
	Name                  string   `json:"name"                   yaml:"name"`
	Tags                  []string `json:"tags"                   yaml:"tags"`
	OS                    string   `json:"os"                     yaml:"os"`
	Workspace             string   `json:"workspace"              yaml:"workspace"`
	InstallableAdvisories int      `json:"installable_advisories" yaml:"installable_advisories"`
	ApplicableAdvisories  int      `json:"applicable_advisories"  yaml:"applicable_advisories"`
	LastSeen              string   `json:"last_seen"              yaml:"last_seen"`
}

// Systems returns the systems of a template detail page.
func Systems() []System {
	rows := []System{
		{Name: "joe-jenkins-tasks-rhel-89-prod", Tags: []string{}, OS: "RHEL 8.9", Workspace: "Ungrouped Hosts", InstallableAdvisories: 2, ApplicableAdvisories: 290, LastSeen: "7 hours ago"},
		{Name: "web-server-01.example.com", Tags: []string{"production", "web"}, OS: "RHEL 9.2", Workspace: "Production Servers", InstallableAdvisories: 5, ApplicableAdvisories: 142, LastSeen: "2 hours ago"},
		{Name: "db-primary-rhel8", Tags: []string{"database", "critical"}, OS: "RHEL 8.8", Workspace: "Database Cluster", InstallableAdvisories: 12, ApplicableAdvisories: 87, LastSeen: "1 hour ago"},
		{Name: "app-worker-node-03", Tags: []string{"worker"}, OS: "RHEL 9.1", Workspace: "Application Servers", InstallableAdvisories: 8, ApplicableAdvisories: 156, LastSeen: "4 hours ago"},
		{Name: "monitoring-host-beta", Tags: []string{"monitoring", "beta"}, OS: "RHEL 8.9", Workspace: "Infrastructure", InstallableAdvisories: 3, ApplicableAdvisories: 201, LastSeen: "30 minutes ago"},
		{Name: "backup-server-02", Tags: []string{"backup"}, OS: "RHEL 9.0", Workspace: "Backup Systems", InstallableAdvisories: 15, ApplicableAdvisories: 98, LastSeen: "6 hours ago"},
		{Name: "dev-test-environment", Tags: []string{"development", "testing"}, OS: "RHEL 8.7", Workspace: "Development", InstallableAdvisories: 0, ApplicableAdvisories: 67, LastSeen: "1 day ago"},
		{Name: "load-balancer-01", Tags: []string{"network", "production"}, OS: "RHEL 9.2", Workspace: "Network Infrastructure", InstallableAdvisories: 4, ApplicableAdvisories: 123, LastSeen: "3 hours ago"},
	}
	for i := range rows {
		rows[i].ID = fmt.Sprintf("system-%d", i+1)
	}
	return rows
}

// SystemSchema describes the systems table. Only the name is searched; tags
// sort by their joined text.
func SystemSchema() listview.Schema[System] {
	return listview.Schema[System]{
		Name: TableSystems,
		ID:   func(s System) string { return s.ID },
		Columns: []listview.Column[System]{
			{Label: "Name", Value: func(s System) listview.Value { return listview.StringValue(s.Name) }, Searchable: true, Sortable: true, Width: 32},
			{Label: "Tags", Value: func(s System) listview.Value { return listview.ListValue(s.Tags...) }, Sortable: true, Width: 22},
			{Label: "OS", Value: func(s System) listview.Value { return listview.StringValue(s.OS) }, Sortable: true, Width: 9},
			{Label: "Workspace", Value: func(s System) listview.Value { return listview.StringValue(s.Workspace) }, Sortable: true, Width: 22},
			{Label: "Installable advisories", Value: func(s System) listview.Value { return listview.IntValue(s.InstallableAdvisories) }, Sortable: true, Width: 11},
			{Label: "Applicable advisories", Value: func(s System) listview.Value { return listview.IntValue(s.ApplicableAdvisories) }, Sortable: true, Width: 11},
			{Label: "Last seen", Value: func(s System) listview.Value { return listview.StringValue(s.LastSeen) }, Sortable: true, Width: 14},
		},
	}
}
