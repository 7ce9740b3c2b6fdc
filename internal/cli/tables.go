package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/rshade/contentview/internal/catalog"
)

// tableDetail is a table summary with per-column capabilities.
type tableDetail struct {
	catalog.TableInfo `yaml:",inline"`

	Details []columnDetail `json:"column_details,omitempty" yaml:"column_details,omitempty"`
}

type columnDetail struct {
	Index      int    `json:"index"      yaml:"index"`
	Label      string `json:"label"      yaml:"label"`
	Sortable   bool   `json:"sortable"   yaml:"sortable"`
	Searchable bool   `json:"searchable" yaml:"searchable"`
}

// newTablesCmd creates the tables command for listing the available tables.
func newTablesCmd(s *session) *cobra.Command {
	var (
		verbose bool
		output  string
	)

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "List the available tables",
		Long:  "List every table with its row count and columns",
		Example: `  # List tables
  contentview tables

  # Show which columns sort and search
  contentview tables --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTables(cmd, s, verbose, output)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show column capabilities")
	cmd.Flags().StringVarP(&output, "output", "o", string(OutputTable), "output format: table, plain, json, yaml")

	return cmd
}

// runTables writes the table listing in the requested format.
func runTables(cmd *cobra.Command, s *session, verbose bool, output string) error {
	format, err := ParseOutputFormat(output)
	if err != nil {
		return err
	}

	reg := s.registry()
	details := make([]tableDetail, 0, len(reg.Names()))
	for _, key := range reg.Names() {
		q, lookupErr := reg.Lookup(key)
		if lookupErr != nil {
			return lookupErr
		}
		d := tableDetail{TableInfo: q.Info()}
		if verbose {
			for i, label := range d.Columns {
				d.Details = append(d.Details, columnDetail{
					Index: i, Label: label, Sortable: q.Sortable(i), Searchable: q.Searchable(i),
				})
			}
		}
		details = append(details, d)
	}

	switch format {
	case OutputJSON, OutputNDJSON:
		return renderJSON(cmd.OutOrStdout(), details)
	case OutputYAML:
		return renderYAML(cmd.OutOrStdout(), details)
	case OutputTable, OutputPlain:
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(w, "KEY\tTITLE\tROWS\tCOLUMNS")
	fmt.Fprintln(w, "---\t-----\t----\t-------")
	for _, d := range details {
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", d.Key, d.Title, d.Rows, strings.Join(d.Columns, ", "))
	}
	if err = w.Flush(); err != nil {
		return fmt.Errorf("flushing table writer: %w", err)
	}

	if !verbose {
		return nil
	}
	out := cmd.OutOrStdout()
	for _, d := range details {
		fmt.Fprintf(out, "\n%s (%s)\n", d.Title, d.Description)
		for _, c := range d.Details {
			fmt.Fprintf(out, "  %d  %-24s %s\n", c.Index, c.Label, capabilities(c))
		}
	}
	return nil
}

func capabilities(c columnDetail) string {
	var caps []string
	if c.Sortable {
		caps = append(caps, "sortable")
	}
	if c.Searchable {
		caps = append(caps, "searchable")
	}
	if len(caps) == 0 {
		return "-"
	}
	return strings.Join(caps, ", ")
}
