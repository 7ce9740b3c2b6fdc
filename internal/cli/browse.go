package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/contentview/internal/tui"
)

// ErrNotInteractive is returned when browse runs without a terminal.
var ErrNotInteractive = errors.New("browse needs an interactive terminal; use 'contentview list' instead")

// newBrowseCmd creates the browse command, which runs the interactive table
// browser.
func newBrowseCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [table]",
		Short: "Browse the tables interactively",
		Long: `Opens the interactive browser with one tab per table.

Press / to search, s or 1-9 to sort, arrow keys to page, space to select a
row, b for bulk selection, f to filter by a column value and q to quit.
Logs are written only when logging.file is configured.`,
		Example: `  # Open the browser on the first table
  contentview browse

  # Start on the packages table
  contentview browse packages`,
		Args:        cobra.MaximumNArgs(1),
		ValidArgs:   catalogTables(),
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			initial := ""
			if len(args) > 0 {
				initial = args[0]
			}
			return runBrowse(cmd, s, initial, tui.IsInteractive())
		},
	}
}

// runBrowse builds the browser and runs it when a terminal is available.
func runBrowse(cmd *cobra.Command, s *session, initial string, interactive bool) error {
	app, err := tui.NewApp(s.registry(), tui.AppOptions{
		PageSize: s.cfg.Display.PageSize,
		Initial:  initial,
		Logger:   s.baseLogger,
	})
	if err != nil {
		return err
	}
	if !interactive {
		return ErrNotInteractive
	}

	logger.Debug().Ctx(cmd.Context()).Str("operation", "browse").Str("table", app.ActiveKey()).Msg("starting browser")
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("failed to run interactive browser: %w", err)
	}
	return nil
}
