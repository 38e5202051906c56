package ports

import "github.com/AntonioJCosta/batc-install/internal/core/domain/install"

// InstallerService defines the one-shot installation contract.
type InstallerService interface {
	// Install runs every installation step in order. The returned report
	// covers the steps that ran, even when an error is returned.
	Install(opts install.Options) (install.Report, error)
}
