package cli

import (
	"fmt"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/config"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
	"github.com/AntonioJCosta/batc-install/internal/handlers/ui"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// rootOptions holds the flag values and the settings loaded for this invocation.
type rootOptions struct {
	configPath string
	repoDir    string
	debug      bool
	settings   config.Settings
}

// installOptions maps the loaded settings onto an installation run.
func (o *rootOptions) installOptions(workDir string) install.Options {
	return install.Options{
		WorkDir:       workDir,
		RepoDir:       o.repoDir,
		DestDir:       o.settings.DestDir,
		ScriptName:    o.settings.ScriptName,
		AliasName:     o.settings.AliasName,
		InstallerFile: o.settings.InstallerFile,
	}
}

// NewRootCommand builds the batc-install command tree. Running the root
// command without a subcommand performs the installation.
func NewRootCommand(
	version string,
	installerService ports.InstallerService,
	managementService ports.AliasManagementService,
	settingsProvider ports.SettingsProvider,
	logger *log.Logger,
) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "batc-install",
		Short: "batc-install installs the batc script and registers its alias.",
		Long: `batc-install moves batc.py from the current directory into ~/.bin,
appends an alias for it to ~/.bashrc (or ~/.zshrc), and removes the
repository checkout it was run from.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logger != nil {
				ui.SetDebug(logger, opts.debug)
			}
			if settingsProvider == nil {
				return fmt.Errorf("settings provider not initialized for command %s", cmd.Name())
			}
			if installerService == nil && cmd.Name() == "batc-install" {
				return fmt.Errorf("installer service not initialized for command %s", cmd.Name())
			}
			if managementService == nil && cmd.Name() == "status" {
				return fmt.Errorf("alias management service not initialized for command %s", cmd.Name())
			}

			settings, err := settingsProvider.Load(opts.configPath)
			if err != nil {
				return fmt.Errorf("could not load settings: %w", err)
			}
			opts.settings = settings
			if logger != nil {
				logger.Debug("loaded settings", "script", settings.ScriptName, "alias", settings.AliasName, "dest", settings.DestDir)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstallCmd(cmd, opts, installerService)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to a YAML settings file (default $XDG_CONFIG_HOME/batc-install/config.yaml).")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Print diagnostic output to stderr.")
	rootCmd.Flags().StringVar(&opts.repoDir, "repo-dir", "", "Repository directory to remove after installing (default: the current directory).")

	rootCmd.AddCommand(NewStatusCommand(managementService, opts))
	rootCmd.AddCommand(NewConfigCommand(opts))

	return rootCmd
}
