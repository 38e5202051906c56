package ports

import "github.com/AntonioJCosta/batc-install/internal/core/domain/config"

// SettingsProvider loads the installer settings. configPath is optional;
// when set, the file must exist.
type SettingsProvider interface {
	Load(configPath string) (config.Settings, error)
}
