package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/config"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	appDirName = "batc-install"
	fileName   = "config"
	fileType   = "yaml"
	envPrefix  = "BATC_INSTALL"
)

// ViperProvider implements ports.SettingsProvider with defaults, an
// optional YAML file and BATC_INSTALL_* environment variables, in
// increasing order of precedence.
type ViperProvider struct {
	configDir  func() (string, error)
	executable func() (string, error)
}

// NewViperProvider creates a new ViperProvider.
func NewViperProvider() ports.SettingsProvider {
	return &ViperProvider{
		configDir:  os.UserConfigDir,
		executable: os.Executable,
	}
}

// DefaultConfigPath returns the config file used when none is given.
func (p *ViperProvider) DefaultConfigPath() (string, error) {
	dir, err := p.configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDirName, fileName+"."+fileType), nil
}

// Load implements the ports.SettingsProvider interface.
func (p *ViperProvider) Load(configPath string) (config.Settings, error) {
	v := viper.New()
	v.SetConfigType(fileType)

	defaults := config.Default()
	v.SetDefault("script_name", defaults.ScriptName)
	v.SetDefault("alias_name", defaults.AliasName)
	v.SetDefault("dest_dir", defaults.DestDir)
	v.SetDefault("installer_file", p.defaultInstallerFile())

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if err := p.readConfigFile(v, configPath); err != nil {
		return config.Settings{}, err
	}

	var s config.Settings
	if err := v.Unmarshal(&s); err != nil {
		return config.Settings{}, fmt.Errorf("failed to decode settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return config.Settings{}, err
	}
	return s, nil
}

func (p *ViperProvider) readConfigFile(v *viper.Viper, configPath string) error {
	explicit := configPath != ""
	if !explicit {
		path, err := p.DefaultConfigPath()
		if err != nil {
			// No config directory means no default file to read.
			return nil
		}
		configPath = path
	}

	if _, err := os.Stat(configPath); err != nil {
		if !explicit && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("config file %s: %w", configPath, err)
	}

	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}
	return nil
}

func (p *ViperProvider) defaultInstallerFile() string {
	exe, err := p.executable()
	if err != nil {
		return ""
	}
	return filepath.Base(exe)
}

// Render returns the settings as a YAML document.
func Render(s config.Settings) (string, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to render settings: %w", err)
	}
	return string(out), nil
}
