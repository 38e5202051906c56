/*
Package install defines the inputs and outcomes of an installation run.
*/
package install

import (
	"path/filepath"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/alias"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
)

/*
Options describes one installation run. WorkDir is where the script is
expected; RepoDir is removed at the end and defaults to WorkDir.
*/
type Options struct {
	WorkDir       string
	RepoDir       string
	DestDir       string
	ScriptName    string
	AliasName     string
	InstallerFile string
}

// ResolveDestDir returns the absolute destination directory for destDir,
// which is taken relative to home unless already absolute.
func ResolveDestDir(destDir, home string) string {
	if filepath.IsAbs(destDir) {
		return filepath.Clean(destDir)
	}
	return filepath.Join(home, destDir)
}

// Step identifies one stage of the installation, in execution order.
type Step int

const (
	StepResolveHome Step = iota + 1
	StepEnsureDestDir
	StepVerifyScript
	StepMakeExecutable
	StepMoveScript
	StepSelectProfile
	StepAppendAlias
	StepReloadProfile
	StepRemoveInstaller
	StepRemoveRepo
)

var stepNames = map[Step]string{
	StepResolveHome:     "resolve home directory",
	StepEnsureDestDir:   "ensure destination directory",
	StepVerifyScript:    "verify script",
	StepMakeExecutable:  "mark executable",
	StepMoveScript:      "move script",
	StepSelectProfile:   "select shell profile",
	StepAppendAlias:     "append alias",
	StepReloadProfile:   "reload shell profile",
	StepRemoveInstaller: "remove installer",
	StepRemoveRepo:      "remove repository",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown step"
}

// Status is the outcome of a single step.
type Status string

const (
	StatusDone    Status = "done"
	StatusSkipped Status = "skipped"
	StatusWarned  Status = "warning"
)

// StepResult records what happened in one step.
type StepResult struct {
	Step   Step
	Status Status
	Detail string
}

// Report summarizes a completed (or partially completed) run.
type Report struct {
	HomeDir      string
	DestDir      string
	ScriptPath   string
	RepoDir      string
	Alias        alias.Alias
	Profile      shell.Profile
	ProfileFound bool
	Steps        []StepResult
}

// Record appends a step outcome.
func (r *Report) Record(step Step, status Status, detail string) {
	r.Steps = append(r.Steps, StepResult{Step: step, Status: status, Detail: detail})
}

// Warnings returns the results of steps that completed with a warning.
func (r Report) Warnings() []StepResult {
	var warned []StepResult
	for _, s := range r.Steps {
		if s.Status == StatusWarned {
			warned = append(warned, s)
		}
	}
	return warned
}

// Result returns the recorded outcome for step, if the step ran.
func (r Report) Result(step Step) (StepResult, bool) {
	for _, s := range r.Steps {
		if s.Step == step {
			return s, true
		}
	}
	return StepResult{}, false
}

/*
InstallStatus describes the current state of an installation as seen from
the user's home directory. It backs the status command.
*/
type InstallStatus struct {
	ScriptPath       string
	ScriptPresent    bool
	ScriptExecutable bool
	Alias            alias.Alias
	Profile          shell.Profile
	ProfileFound     bool
	AliasRegistered  bool
	RegisteredTarget string
	ProfileAliases   map[string]string
}
