package cli

import (
	"github.com/spf13/cobra"
)

// newConfigShowCmd creates the config show command, which prints the
// effective configuration.
func newConfigShowCmd(s *session) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Long:  "Prints the configuration after applying the config file, project overlay, environment and flags.",
		Example: `  # Show the configuration as YAML
  contentview config show

  # As JSON
  contentview config show --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := ParseOutputFormat(output)
			if err != nil {
				return err
			}
			if format == OutputJSON || format == OutputNDJSON {
				return renderJSON(cmd.OutOrStdout(), s.cfg)
			}
			return renderYAML(cmd.OutOrStdout(), s.cfg)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(OutputYAML), "output format: yaml or json")
	return cmd
}
