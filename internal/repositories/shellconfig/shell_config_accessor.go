package shellconfig

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/alias"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
)

// ShellConfigAccessor provides access to the bash and zsh profiles in the
// user's home directory.
type ShellConfigAccessor struct {
	homeDir string
}

// NewShellConfigAccessor creates an accessor that resolves the home
// directory of the invoking user on first use.
func NewShellConfigAccessor() ports.ShellConfigAccessor {
	return &ShellConfigAccessor{}
}

// NewShellConfigAccessorForHome creates an accessor rooted at homeDir.
func NewShellConfigAccessorForHome(homeDir string) ports.ShellConfigAccessor {
	return &ShellConfigAccessor{homeDir: homeDir}
}

// HomeDir implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) HomeDir() (string, error) {
	if sca.homeDir != "" {
		return sca.homeDir, nil
	}
	usr, err := user.Current()
	if err == nil && usr.HomeDir != "" {
		sca.homeDir = usr.HomeDir
		return sca.homeDir, nil
	}
	home, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("failed to get current user: %w", err)
		}
		return "", fmt.Errorf("failed to resolve home directory: %w", homeErr)
	}
	sca.homeDir = home
	return sca.homeDir, nil
}

// SelectProfile implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) SelectProfile() (shell.Profile, bool, error) {
	home, err := sca.HomeDir()
	if err != nil {
		return shell.Profile{}, false, err
	}
	for _, candidate := range shell.ProfileCandidates {
		path := filepath.Join(home, candidate.FileName)
		ok, err := isRegularFile(path)
		if err != nil {
			return shell.Profile{}, false, fmt.Errorf("failed to check profile %s: %w", toUserFriendlyPath(path, home), err)
		}
		if ok {
			return shell.Profile{Shell: candidate.Shell, Path: path}, true, nil
		}
	}
	return shell.Profile{}, false, nil
}

// AppendAlias implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) AppendAlias(profile shell.Profile, newAlias alias.Alias) error {
	// No O_CREATE: a profile that vanished since selection is an error, not a new file.
	file, err := os.OpenFile(profile.Path, os.O_APPEND|os.O_RDWR, 0)
	if err != nil {
		return fmt.Errorf("failed to open shell profile %s for appending: %w", profile.Path, err)
	}
	defer file.Close()

	terminated, err := endsWithNewline(file)
	if err != nil {
		return fmt.Errorf("failed to read shell profile %s: %w", profile.Path, err)
	}
	line := newAlias.Line() + "\n"
	if !terminated {
		line = "\n" + line
	}
	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("failed to write alias to shell profile %s: %w", profile.Path, err)
	}
	return nil
}

// GetExistingAliases implements the ports.ShellConfigAccessor interface.
func (sca *ShellConfigAccessor) GetExistingAliases(profile shell.Profile) (map[string]string, error) {
	return getAliasesFromFile(profile.Path)
}
