package installation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/config"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
)

// plan holds the absolute paths one run works with.
type plan struct {
	homeDir       string
	workDir       string
	destDir       string
	scriptSrc     string
	scriptDst     string
	installerPath string
	repoDir       string
}

func newPlan(opts install.Options, home string) (plan, error) {
	if opts.ScriptName == "" {
		return plan{}, fmt.Errorf("script name must not be empty")
	}
	if opts.AliasName == "" {
		return plan{}, fmt.Errorf("alias name must not be empty")
	}

	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return plan{}, fmt.Errorf("failed to get working directory: %w", err)
		}
		workDir = wd
	}
	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return plan{}, fmt.Errorf("failed to resolve working directory: %w", err)
	}

	repoDir := workDir
	if opts.RepoDir != "" {
		if repoDir, err = filepath.Abs(opts.RepoDir); err != nil {
			return plan{}, fmt.Errorf("failed to resolve repository directory: %w", err)
		}
	}

	destDir := filepath.Join(home, config.DefaultDestDir)
	if opts.DestDir != "" {
		destDir = install.ResolveDestDir(opts.DestDir, home)
	}

	scriptDst := filepath.Join(destDir, opts.ScriptName)
	if strings.ContainsAny(scriptDst, "'\n") {
		return plan{}, fmt.Errorf("%w: %q contains a quote or newline", ErrUnquotablePath, scriptDst)
	}

	p := plan{
		homeDir:   filepath.Clean(home),
		workDir:   workDir,
		destDir:   destDir,
		scriptSrc: filepath.Join(workDir, opts.ScriptName),
		scriptDst: scriptDst,
		repoDir:   repoDir,
	}
	if opts.InstallerFile != "" && opts.InstallerFile != opts.ScriptName {
		p.installerPath = filepath.Join(workDir, opts.InstallerFile)
	}
	return p, nil
}

// checkRepoDirPlacement rejects repository directories whose removal would
// also remove the home directory or the freshly installed script.
func checkRepoDirPlacement(repoDir, homeDir, destDir string) error {
	switch {
	case repoDir == filepath.Dir(repoDir):
		return fmt.Errorf("%w: %s is the filesystem root", ErrUnsafeRepoDir, repoDir)
	case isWithin(homeDir, repoDir):
		return fmt.Errorf("%w: %s contains the home directory %s", ErrUnsafeRepoDir, repoDir, homeDir)
	case isWithin(destDir, repoDir):
		return fmt.Errorf("%w: %s contains the destination directory %s", ErrUnsafeRepoDir, repoDir, destDir)
	case isWithin(repoDir, destDir):
		return fmt.Errorf("%w: %s is inside the destination directory %s", ErrUnsafeRepoDir, repoDir, destDir)
	}
	return nil
}

// isWithin reports whether path equals dir or lies below it.
func isWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}
