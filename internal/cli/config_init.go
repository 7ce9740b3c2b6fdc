package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/contentview/internal/config"
	"github.com/rshade/contentview/internal/tui"
)

// ErrConfigExists is returned when config init would overwrite a file.
var ErrConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// newConfigInitCmd creates the config init command for initializing configuration.
func newConfigInitCmd(s *session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

The file is written to --config, $CONTENTVIEW_CONFIG or ~/.contentview/config.yaml.
An existing file is only replaced with --force or after confirmation.`,
		Example: `  # Create the default configuration
  contentview config init

  # Create configuration, overwriting existing
  contentview config init --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationDefaults: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigInit(cmd, s.configPath, force, tui.IsInteractive())
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")

	return cmd
}

// runConfigInit writes the default configuration to path.
func runConfigInit(cmd *cobra.Command, path string, force, interactive bool) error {
	if !force {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			answer := Confirm(cmd.OutOrStdout(), cmd.InOrStdin(), interactive,
				fmt.Sprintf("Overwrite %s?", path))
			if !answer.Accepted {
				return ErrConfigExists
			}
		case !os.IsNotExist(err):
			return fmt.Errorf("cannot access config path %s: %w", path, err)
		}
	}

	if err := config.New().Save(path); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	logger.Info().Ctx(cmd.Context()).Str("path", path).Msg("configuration initialized")
	fmt.Fprintf(cmd.OutOrStdout(), "Configuration initialized at %s\n", path)
	return nil
}
