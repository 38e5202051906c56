/*
Package config defines the installer settings and their validation rules.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultScriptName = "batc.py"
	DefaultAliasName  = "batc"
	DefaultDestDir    = ".bin"
)

// ErrInvalidSetting is returned by Validate when a setting cannot be used.
var ErrInvalidSetting = errors.New("invalid setting")

/*
Settings holds the values the installer works with. DestDir is relative to
the home directory unless absolute. InstallerFile is the name of the
installer inside the working directory that is removed after a successful
install; empty disables that step.
*/
type Settings struct {
	ScriptName    string `yaml:"script_name" mapstructure:"script_name"`
	AliasName     string `yaml:"alias_name" mapstructure:"alias_name"`
	DestDir       string `yaml:"dest_dir" mapstructure:"dest_dir"`
	InstallerFile string `yaml:"installer_file" mapstructure:"installer_file"`
}

// Default returns the settings used when nothing is configured.
func Default() Settings {
	return Settings{
		ScriptName: DefaultScriptName,
		AliasName:  DefaultAliasName,
		DestDir:    DefaultDestDir,
	}
}

// Validate checks that every name can be used as a single path element and
// inside the single-quoted alias line.
func (s Settings) Validate() error {
	if err := validateName("script_name", s.ScriptName, true); err != nil {
		return err
	}
	if err := validateName("alias_name", s.AliasName, true); err != nil {
		return err
	}
	if err := validateName("installer_file", s.InstallerFile, false); err != nil {
		return err
	}
	if strings.TrimSpace(s.DestDir) == "" {
		return fmt.Errorf("%w: dest_dir must not be empty", ErrInvalidSetting)
	}
	if strings.Contains(s.DestDir, "'") {
		return fmt.Errorf("%w: dest_dir must not contain a single quote", ErrInvalidSetting)
	}
	return nil
}

func validateName(key, value string, required bool) error {
	if strings.TrimSpace(value) == "" {
		if required {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidSetting, key)
		}
		return nil
	}
	if value == "." || value == ".." || strings.ContainsAny(value, `/\`) {
		return fmt.Errorf("%w: %s %q must be a plain file name", ErrInvalidSetting, key, value)
	}
	if strings.ContainsAny(value, "'\n") {
		return fmt.Errorf("%w: %s %q must not contain quotes or newlines", ErrInvalidSetting, key, value)
	}
	return nil
}
