package testutil

import (
	"errors"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/config"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
)

// MockInstallerService is a mock implementation of ports.InstallerService.
type MockInstallerService struct {
	InstallFunc  func(opts install.Options) (install.Report, error)
	InstallCalls []install.Options
}

func (m *MockInstallerService) Install(opts install.Options) (install.Report, error) {
	m.InstallCalls = append(m.InstallCalls, opts)
	if m.InstallFunc != nil {
		return m.InstallFunc(opts)
	}
	return install.Report{}, errors.New("MockInstallerService: InstallFunc not implemented")
}

// MockAliasManagementService is a mock implementation of ports.AliasManagementService.
type MockAliasManagementService struct {
	ListAliasesFunc func() (shell.Profile, map[string]string, bool, error)
	StatusFunc      func(opts install.Options) (install.InstallStatus, error)
}

func (m *MockAliasManagementService) ListAliases() (shell.Profile, map[string]string, bool, error) {
	if m.ListAliasesFunc != nil {
		return m.ListAliasesFunc()
	}
	return shell.Profile{}, nil, false, errors.New("MockAliasManagementService: ListAliasesFunc not implemented")
}

func (m *MockAliasManagementService) Status(opts install.Options) (install.InstallStatus, error) {
	if m.StatusFunc != nil {
		return m.StatusFunc(opts)
	}
	return install.InstallStatus{}, errors.New("MockAliasManagementService: StatusFunc not implemented")
}

// MockSettingsProvider is a mock implementation of ports.SettingsProvider.
// With no LoadFunc set it returns config.Default().
type MockSettingsProvider struct {
	LoadFunc func(configPath string) (config.Settings, error)
}

func (m *MockSettingsProvider) Load(configPath string) (config.Settings, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(configPath)
	}
	return config.Default(), nil
}

var (
	_ ports.InstallerService       = (*MockInstallerService)(nil)
	_ ports.AliasManagementService = (*MockAliasManagementService)(nil)
	_ ports.SettingsProvider       = (*MockSettingsProvider)(nil)
)
