package cli

import (
	"fmt"

	"github.com/AntonioJCosta/batc-install/internal/adapters/settings"
	"github.com/spf13/cobra"
)

// NewConfigCommand creates the 'config' subcommand.
func NewConfigCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective settings as YAML.",
		Long: `Prints the settings after defaults, the settings file and
BATC_INSTALL_* environment variables have been applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := settings.Render(opts.settings)
			if err != nil {
				return fmt.Errorf("could not render settings: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}
}
