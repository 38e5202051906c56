package cli

import (
	"fmt"
	"sort"

	"github.com/AntonioJCosta/batc-install/internal/core/ports"
	"github.com/AntonioJCosta/batc-install/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewStatusCommand creates the 'status' subcommand.
func NewStatusCommand(managementService ports.AliasManagementService, opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the script is installed and its alias registered.",
		Long: `Inspects the destination directory and the selected shell profile
(~/.bashrc, else ~/.zshrc) and lists the aliases that profile defines.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatusCmd(cmd, managementService, opts)
		},
	}
	return cmd
}

func runStatusCmd(cmd *cobra.Command, managementService ports.AliasManagementService, opts *rootOptions) error {
	status, err := managementService.Status(opts.installOptions(""))
	if err != nil {
		return fmt.Errorf("could not inspect installation: %w", err)
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, ui.HeaderColor("Installation:"))
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Item", "Value"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	table.Append([]string{"Script", status.ScriptPath})
	table.Append([]string{"Present", ui.YesNo(status.ScriptPresent)})
	table.Append([]string{"Executable", ui.YesNo(status.ScriptExecutable)})
	if status.ProfileFound {
		table.Append([]string{"Profile", status.Profile.Path})
	} else {
		table.Append([]string{"Profile", ui.WarningColor("none (~/.bashrc and ~/.zshrc missing)")})
	}
	table.Append([]string{"Alias " + status.Alias.Name, ui.YesNo(status.AliasRegistered)})
	if status.AliasRegistered && status.RegisteredTarget != status.ScriptPath {
		table.Append([]string{"Alias target", ui.WarningColor(status.RegisteredTarget)})
	}
	table.Render()

	if !status.ProfileFound {
		return nil
	}
	if len(status.ProfileAliases) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No aliases found in %s.", status.Profile.Path)))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Aliases in %s:", status.Profile.Path)))
	names := make([]string, 0, len(status.ProfileAliases))
	for name := range status.ProfileAliases {
		names = append(names, name)
	}
	sort.Strings(names)

	aliases := tablewriter.NewWriter(out)
	aliases.SetHeader([]string{"Alias Name", "Command"})
	aliases.SetBorder(true)
	aliases.SetAutoWrapText(false)
	aliases.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	for _, name := range names {
		aliases.Append([]string{name, status.ProfileAliases[name]})
	}
	aliases.Render()
	return nil
}
