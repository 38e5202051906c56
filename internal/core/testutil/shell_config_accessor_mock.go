package testutil

import (
	"errors"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/alias"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
)

// MockShellConfigAccessor is a mock implementation of ports.ShellConfigAccessor for testing.
type MockShellConfigAccessor struct {
	HomeDirFunc            func() (string, error)
	SelectProfileFunc      func() (shell.Profile, bool, error)
	AppendAliasFunc        func(profile shell.Profile, newAlias alias.Alias) error
	GetExistingAliasesFunc func(profile shell.Profile) (map[string]string, error)

	// AppendAliasCalls records every alias passed to AppendAlias.
	AppendAliasCalls []alias.Alias
}

func (m *MockShellConfigAccessor) HomeDir() (string, error) {
	if m.HomeDirFunc != nil {
		return m.HomeDirFunc()
	}
	return "", errors.New("MockShellConfigAccessor: HomeDirFunc not implemented")
}

func (m *MockShellConfigAccessor) SelectProfile() (shell.Profile, bool, error) {
	if m.SelectProfileFunc != nil {
		return m.SelectProfileFunc()
	}
	return shell.Profile{}, false, nil
}

func (m *MockShellConfigAccessor) AppendAlias(profile shell.Profile, newAlias alias.Alias) error {
	m.AppendAliasCalls = append(m.AppendAliasCalls, newAlias)
	if m.AppendAliasFunc != nil {
		return m.AppendAliasFunc(profile, newAlias)
	}
	return nil
}

func (m *MockShellConfigAccessor) GetExistingAliases(profile shell.Profile) (map[string]string, error) {
	if m.GetExistingAliasesFunc != nil {
		return m.GetExistingAliasesFunc(profile)
	}
	return nil, errors.New("MockShellConfigAccessor: GetExistingAliasesFunc not implemented")
}

var _ ports.ShellConfigAccessor = (*MockShellConfigAccessor)(nil)
