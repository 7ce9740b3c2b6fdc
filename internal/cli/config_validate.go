package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newConfigValidateCmd creates the config validate command for validating configuration.
func newConfigValidateCmd(s *session) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the resolved configuration: the config file, the project overlay
and CONTENTVIEW_* environment overrides.

This includes:
- Page size is a positive integer
- Locale is a valid BCP 47 tag
- Log level and format names`,
		Example: `  # Validate current configuration
  contentview config validate

  # Validate and show detailed information
  contentview config validate --verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, s, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate reports the validation result. Invalid settings already
// fail while loading, so reaching here means the configuration is valid.
func runConfigValidate(cmd *cobra.Command, s *session, verbose bool) error {
	if err := s.cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Configuration is valid")

	if verbose {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Configuration details:")
		fmt.Fprintf(out, "  Config file: %s\n", s.configPath)
		fmt.Fprintf(out, "  Page size: %d\n", s.cfg.Display.PageSize)
		fmt.Fprintf(out, "  Locale: %s\n", s.cfg.Display.Locale)
		fmt.Fprintf(out, "  Seed: %d\n", s.cfg.Data.Seed)
		fmt.Fprintf(out, "  Logging level: %s\n", s.cfg.Logging.Level)
		fmt.Fprintf(out, "  Logging format: %s\n", s.cfg.Logging.Format)
		if s.cfg.Logging.File != "" {
			fmt.Fprintf(out, "  Log file: %s\n", s.cfg.Logging.File)
		}
	}

	return nil
}
