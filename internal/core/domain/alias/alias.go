/*
Package alias defines the core domain entity for an alias.
*/
package alias

import "fmt"

/*
Alias represents a shell alias, consisting of a short name and the
command it expands to. For the installer the command is always the
absolute path of the installed script.
*/
type Alias struct {
	Command string `yaml:"command"`
	Name    string `yaml:"alias"`
}

// Line renders the alias in the fixed `alias <name>='<command>'` form
// written to shell profiles. No trailing newline is included.
func (a Alias) Line() string {
	return fmt.Sprintf("alias %s='%s'", a.Name, a.Command)
}
