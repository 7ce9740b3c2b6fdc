package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/rshade/contentview/internal/catalog"
	"github.com/rshade/contentview/internal/config"
	"github.com/rshade/contentview/internal/listview"
	"github.com/rshade/contentview/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// Command annotations read by the root PersistentPreRunE.
const (
	// annotationInteractive marks commands that own the terminal; their logs
	// never go to stderr.
	annotationInteractive = "interactive"
	// annotationDefaults marks commands that run on default settings instead
	// of loading the config file.
	annotationDefaults = "defaults"
)

// rootOptions holds the persistent flags.
type rootOptions struct {
	configPath string
	debug      bool
	logLevel   string
	seed       uint64
}

// session is the state shared by every command of one invocation: the
// resolved configuration and the logger built from it.
type session struct {
	opts       rootOptions
	cfg        *config.Config
	configPath string
	baseLogger zerolog.Logger
	logResult  *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the contentview CLI.
// It wires up configuration, logging and tracing, and the list, browse,
// tables and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	s := &session{baseLogger: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "contentview",
		Short: "Browse content tables with search, sort, paging and selection",
		Long: `contentview lists content templates, repositories, systems and packages.

Every table supports case-insensitive search, column sorting, pagination and
selection, either interactively (browse) or one query at a time (list).`,
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.loadConfig(cmd); err != nil {
				return err
			}
			s.setupLogging(cmd)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(s.logResult)
		},
	}

	cmd.PersistentFlags().StringVar(&s.opts.configPath, "config", "",
		"config file (default: $CONTENTVIEW_CONFIG or ~/.contentview/config.yaml)")
	cmd.PersistentFlags().BoolVar(&s.opts.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&s.opts.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	cmd.PersistentFlags().Uint64Var(&s.opts.seed, "seed", config.DefaultSeed, "seed for the generated sample tables")

	cmd.AddCommand(newListCmd(s), newBrowseCmd(s), newTablesCmd(s), newConfigCmd(s))
	return cmd
}

const rootCmdExample = `  # Browse every table interactively
  contentview browse

  # Search repositories and sort by package count, largest first
  contentview list repositories --search rhel --sort packages:desc

  # Second page of packages, 10 per page, as JSON
  contentview list packages --page 2 --page-size 10 --output json

  # Only invalid templates
  contentview list templates --facet status=Invalid

  # Show the available tables and their columns
  contentview tables

  # Write the default configuration file
  contentview config init`

// loadConfig resolves the configuration: file and project overlay, then the
// environment, then command-line flags.
func (s *session) loadConfig(cmd *cobra.Command) error {
	path, err := config.ResolvePath(s.opts.configPath)
	if err != nil {
		return err
	}
	s.configPath = path

	cfg := config.New()
	if cmd.Annotations[annotationDefaults] == "" {
		wd, wdErr := os.Getwd()
		if wdErr != nil {
			wd = ""
		}
		cfg, err = config.Load(cmd.Context(), path, config.ResolveProjectDir(cmd.Context(), wd))
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = s.opts.logLevel
	}
	if flags.Changed("seed") {
		cfg.Data.Seed = s.opts.seed
	}

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	s.cfg = cfg
	return nil
}

// registry builds the catalog from the configured seed and locale.
func (s *session) registry() *catalog.Registry {
	tag, err := s.cfg.Language()
	if err != nil {
		tag = language.English
	}
	return catalog.NewRegistry(catalog.Options{
		Seed:        s.cfg.Data.Seed,
		Comparators: listview.NewRegistry(tag),
		Logger:      s.baseLogger,
	})
}

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(newConfigInitCmd(s), newConfigShowCmd(s), newConfigValidateCmd(s))
	return cmd
}
