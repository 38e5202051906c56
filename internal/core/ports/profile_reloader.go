package ports

import "github.com/AntonioJCosta/batc-install/internal/core/domain/shell"

// ProfileReloader re-reads a shell profile after it has been modified.
// Reloading happens in a child process and cannot change the caller's shell.
type ProfileReloader interface {
	Reload(profile shell.Profile) error
}
