package main

import (
	"fmt"
	"os"

	"github.com/AntonioJCosta/batc-install/internal/adapters/oscommand"
	"github.com/AntonioJCosta/batc-install/internal/adapters/profilereload"
	"github.com/AntonioJCosta/batc-install/internal/adapters/settings"
	"github.com/AntonioJCosta/batc-install/internal/core/services/aliasmanagement"
	"github.com/AntonioJCosta/batc-install/internal/core/services/installation"
	"github.com/AntonioJCosta/batc-install/internal/handlers/cli"
	"github.com/AntonioJCosta/batc-install/internal/handlers/ui"
	"github.com/AntonioJCosta/batc-install/internal/repositories/scriptstore"
	"github.com/AntonioJCosta/batc-install/internal/repositories/shellconfig"
)

// Version is set at build time
var Version = "dev"

func main() {
	logger := ui.NewLogger(false)

	cmdExec := oscommand.NewOSCommandExecutor()
	reloader := profilereload.NewReloader(cmdExec, logger)

	store := scriptstore.NewFileScriptStore()
	shellConf := shellconfig.NewShellConfigAccessor()

	installerSvc := installation.NewService(store, shellConf, reloader, logger)
	aliasManagementSvc := aliasmanagement.NewService(shellConf, store)
	settingsProvider := settings.NewViperProvider()

	rootCmd := cli.NewRootCommand(Version, installerSvc, aliasManagementSvc, settingsProvider, logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
		os.Exit(1)
	}
}
