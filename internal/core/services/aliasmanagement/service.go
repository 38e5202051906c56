package aliasmanagement

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/alias"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/config"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
)

type service struct {
	shellConfig ports.ShellConfigAccessor
	store       ports.ScriptStore
}

// NewService creates a new alias management service.
// It panics if either dependency is nil.
func NewService(sc ports.ShellConfigAccessor, store ports.ScriptStore) ports.AliasManagementService {
	if sc == nil {
		panic("shellConfig cannot be nil")
	}
	if store == nil {
		panic("store cannot be nil")
	}
	return &service{shellConfig: sc, store: store}
}

// ListAliases returns the aliases defined in the selected shell profile.
func (s *service) ListAliases() (shell.Profile, map[string]string, bool, error) {
	profile, found, err := s.shellConfig.SelectProfile()
	if err != nil {
		return shell.Profile{}, nil, false, fmt.Errorf("failed to select shell profile: %w", err)
	}
	if !found {
		return shell.Profile{}, map[string]string{}, false, nil
	}
	aliases, err := s.shellConfig.GetExistingAliases(profile)
	if err != nil {
		return profile, nil, true, fmt.Errorf("failed to list existing aliases: %w", err)
	}
	return profile, aliases, true, nil
}

// Status reports whether the script is installed and whether the selected
// profile registers the alias for it.
func (s *service) Status(opts install.Options) (install.InstallStatus, error) {
	var status install.InstallStatus

	home, err := s.shellConfig.HomeDir()
	if err != nil {
		return status, err
	}

	destDir := opts.DestDir
	if destDir == "" {
		destDir = config.DefaultDestDir
	}
	status.ScriptPath = filepath.Join(install.ResolveDestDir(destDir, home), opts.ScriptName)
	status.Alias = alias.Alias{Name: opts.AliasName, Command: status.ScriptPath}

	info, err := s.store.Stat(status.ScriptPath)
	switch {
	case err == nil:
		status.ScriptPresent = info.Mode().IsRegular()
		status.ScriptExecutable = status.ScriptPresent && info.Mode().Perm()&0111 != 0
	case !os.IsNotExist(err):
		return status, fmt.Errorf("failed to inspect %s: %w", status.ScriptPath, err)
	}

	profile, aliases, found, err := s.ListAliases()
	if err != nil {
		return status, err
	}
	status.Profile = profile
	status.ProfileFound = found
	status.ProfileAliases = aliases

	if target, ok := aliases[opts.AliasName]; ok {
		status.AliasRegistered = true
		status.RegisteredTarget = target
	}
	return status, nil
}
