package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
	"github.com/AntonioJCosta/batc-install/internal/core/services/installation"
	"github.com/AntonioJCosta/batc-install/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// scriptNotFoundError carries the fixed message shown when the script is
// missing from the working directory.
type scriptNotFoundError struct {
	scriptName string
	err        error
}

func (e *scriptNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in the current directory.", e.scriptName)
}

func (e *scriptNotFoundError) Unwrap() error { return e.err }

// getwd is replaced in tests.
var getwd = os.Getwd

func runInstallCmd(cmd *cobra.Command, opts *rootOptions, installerService ports.InstallerService) error {
	workDir, err := getwd()
	if err != nil {
		return fmt.Errorf("could not determine the current directory: %w", err)
	}

	report, err := installerService.Install(opts.installOptions(workDir))
	if err != nil {
		if errors.Is(err, installation.ErrScriptNotFound) {
			return &scriptNotFoundError{scriptName: opts.settings.ScriptName, err: err}
		}
		return err
	}

	out := cmd.OutOrStdout()
	printSummary(out, report)

	printWarnings(out, report)

	fmt.Fprintln(out)
	fmt.Fprintln(out, ui.SuccessColor(fmt.Sprintf("Installation complete. %s is now at %s.", report.Alias.Name, report.ScriptPath)))
	if report.ProfileFound {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("Open a new shell or run 'source %s' to use the '%s' alias.", report.Profile.Path, report.Alias.Name)))
	}
	return nil
}

func printWarnings(out io.Writer, report install.Report) {
	warnings := report.Warnings()
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(out)
	for _, w := range warnings {
		switch w.Step {
		case install.StepSelectProfile:
			fmt.Fprintln(out, ui.WarningColor("Warning: neither ~/.bashrc nor ~/.zshrc exists, so no alias was added."))
			fmt.Fprintln(out, ui.WarningColor("Add this line to your shell profile manually:"))
			fmt.Fprintf(out, "  %s\n", ui.CodeColor(report.Alias.Line()))
		case install.StepReloadProfile:
			fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Warning: could not reload %s: %s", report.Profile.Path, w.Detail)))
		default:
			fmt.Fprintln(out, ui.WarningColor(fmt.Sprintf("Warning: %s: %s", w.Step, w.Detail)))
		}
	}
}

func printSummary(out io.Writer, report install.Report) {
	fmt.Fprintln(out, ui.HeaderColor("Installation steps:"))
	for _, step := range report.Steps {
		mark := ui.StepDoneMark
		switch step.Status {
		case install.StatusSkipped:
			mark = ui.StepSkippedMark
		case install.StatusWarned:
			mark = ui.StepWarnedMark
		}
		if step.Detail == "" {
			fmt.Fprintf(out, "  %s %s\n", mark, step.Step)
			continue
		}
		fmt.Fprintf(out, "  %s %s %s\n", mark, step.Step, ui.DetailColor(step.Detail))
	}
}
