package ports

import (
	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
)

// AliasManagementService defines the read side of the installer: what is
// installed and which aliases are registered.
type AliasManagementService interface {
	// ListAliases returns the selected profile and the aliases it defines.
	// found is false when no profile exists.
	ListAliases() (profile shell.Profile, aliases map[string]string, found bool, err error)

	// Status inspects the destination script and the alias registration
	// described by opts.
	Status(opts install.Options) (install.InstallStatus, error)
}
