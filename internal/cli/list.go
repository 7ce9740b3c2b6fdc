package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/contentview/internal/catalog"
	"github.com/rshade/contentview/internal/cli/pagination"
	"github.com/rshade/contentview/internal/logging"
	"github.com/rshade/contentview/internal/tui"
)

// listOptions holds the list command flags.
type listOptions struct {
	pagination.Params

	output    string
	plain     bool
	failEmpty bool
}

// newListCmd creates the list command, which runs one query against a table
// and prints the resulting page.
func newListCmd(s *session) *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:   "list <table>",
		Short: "Query a table and print one page",
		Long: `Runs one search, sort and pagination query against a table and prints the page.

Columns in --sort, --search-column and --facet are named by label
(case-insensitive) or by 0-based index. Ids passed with --select are reported
as selected, together with the page and filtered selection state.

Tables: ` + strings.Join(catalogTables(), ", "),
		Example: `  # Templates containing "test", sorted by name
  contentview list templates --search test --sort name

  # Repositories on the last page, 5 per page
  contentview list repositories --page-size 5 --page 99

  # Packages with an upgrade, versions sorted newest first
  contentview list packages --facet status=Upgradable --sort "installed version:desc"

  # Selection state as YAML
  contentview list systems --select system-1 --select system-2 --output yaml`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: catalogTables(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, s, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.Search, "search", "", "case-insensitive search text")
	f.StringVar(&opts.SearchColumn, "search-column", "", "restrict search to one column (label or index)")
	f.StringVar(&opts.Sort, "sort", "", "sort column and order: column[:asc|desc]")
	f.IntVar(&opts.Page, "page", 0, "page number, 1-based (pages past the end show the last page)")
	f.IntVar(&opts.PageSize, "page-size", 0, "rows per page (default from config)")
	f.StringArrayVar(&opts.Facets, "facet", nil, "only rows whose column equals value: column=value (repeatable)")
	f.StringArrayVar(&opts.Select, "select", nil, "record id to mark as selected (repeatable)")
	f.StringVarP(&opts.output, "output", "o", string(OutputTable), "output format: table, plain, json, yaml, ndjson")
	f.BoolVar(&opts.plain, "plain", false, "disable styling for table output")
	f.BoolVar(&opts.failEmpty, "fail-empty", false, "exit with code 3 when no rows match")

	return cmd
}

func catalogTables() []string {
	return []string{
		catalog.TableContent, catalog.TableTemplates, catalog.TableRepositories,
		catalog.TablePopular, catalog.TableSystems, catalog.TablePackages,
	}
}

// runList executes the query and renders the page.
func runList(cmd *cobra.Command, s *session, key string, opts listOptions) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	format, err := ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	table, err := s.registry().Lookup(key)
	if err != nil {
		return err
	}

	q, err := opts.Query(table, s.cfg.Display.PageSize)
	if err != nil {
		return err
	}

	page := table.Query(q, opts.Select)
	log.Debug().Ctx(ctx).Str("operation", "list").Str("table", page.Table).
		Int("matched", page.TotalMatched).Int("page", page.Meta.CurrentPage).
		Int("selected", page.SelectedTotal).Msg("query complete")

	if format == OutputTable {
		mode := tui.DetectOutputMode(false, false, opts.plain)
		if mode == tui.OutputModePlain {
			format = OutputPlain
		}
	}
	if err = renderPage(cmd.OutOrStdout(), format, page, opts.Select); err != nil {
		return err
	}

	if opts.failEmpty && page.TotalMatched == 0 {
		return &ExitError{Code: ExitCodeNoResults, Reason: "no rows matched the query"}
	}
	return nil
}
