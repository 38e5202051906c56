package testutil

import (
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
)

// MockProfileReloader is a mock implementation of ports.ProfileReloader.
// With no ReloadFunc set it succeeds.
type MockProfileReloader struct {
	ReloadFunc  func(profile shell.Profile) error
	ReloadCalls []shell.Profile
}

func (m *MockProfileReloader) Reload(profile shell.Profile) error {
	m.ReloadCalls = append(m.ReloadCalls, profile)
	if m.ReloadFunc != nil {
		return m.ReloadFunc(profile)
	}
	return nil
}

var _ ports.ProfileReloader = (*MockProfileReloader)(nil)
