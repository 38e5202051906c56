package ports

import (
	"github.com/AntonioJCosta/batc-install/internal/core/domain/alias"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
)

/*
ShellConfigAccessor defines the interface for locating and writing to
shell profile files. This is a driven port, implemented by a repository
adapter that knows where bash and zsh keep their startup files.
*/
type ShellConfigAccessor interface {
	// HomeDir returns the invoking user's home directory.
	HomeDir() (string, error)

	/*
	   SelectProfile picks the profile an alias should be registered in.
	   The bash profile wins over the zsh profile. found is false when
	   neither exists; that is not an error.
	*/
	SelectProfile() (profile shell.Profile, found bool, err error)

	/*
	   AppendAlias appends the alias line to an existing profile. It never
	   creates the profile and never checks for an earlier definition.
	*/
	AppendAlias(profile shell.Profile, newAlias alias.Alias) error

	/*
	   GetExistingAliases parses the alias definitions in the profile.
	   It returns a map where the key is the alias name and the value is the
	   command. When a name is defined more than once the last one wins.
	*/
	GetExistingAliases(profile shell.Profile) (map[string]string, error)
}
