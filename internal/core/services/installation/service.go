package installation

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/alias"
	"github.com/AntonioJCosta/batc-install/internal/core/domain/install"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
	"github.com/charmbracelet/log"
)

var (
	// ErrScriptNotFound is returned when the script to install is not in the working directory.
	ErrScriptNotFound = errors.New("script not found")

	// ErrUnsafeRepoDir is returned when the repository directory could take the
	// home or destination directory down with it.
	ErrUnsafeRepoDir = errors.New("refusing to remove repository directory")

	// ErrUnquotablePath is returned when the installed script path cannot be
	// written inside the single-quoted alias line.
	ErrUnquotablePath = errors.New("script path cannot be used in an alias")
)

type service struct {
	store       ports.ScriptStore
	shellConfig ports.ShellConfigAccessor
	reloader    ports.ProfileReloader
	logger      *log.Logger
}

// NewService creates a new installation service.
// It panics if any dependency other than the logger is nil.
func NewService(
	store ports.ScriptStore,
	shellConfig ports.ShellConfigAccessor,
	reloader ports.ProfileReloader,
	logger *log.Logger,
) ports.InstallerService {
	if store == nil {
		panic("store cannot be nil")
	}
	if shellConfig == nil {
		panic("shellConfig cannot be nil")
	}
	if reloader == nil {
		panic("reloader cannot be nil")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &service{
		store:       store,
		shellConfig: shellConfig,
		reloader:    reloader,
		logger:      logger,
	}
}

// Install implements ports.InstallerService. Steps run strictly in order and
// nothing is retried or rolled back; best-effort steps record a warning in
// the report instead of failing.
func (s *service) Install(opts install.Options) (install.Report, error) {
	var report install.Report

	home, err := s.shellConfig.HomeDir()
	if err != nil {
		return report, err
	}
	report.HomeDir = home
	report.Record(install.StepResolveHome, install.StatusDone, home)
	s.logger.Debug("resolved home directory", "home", home)

	p, err := newPlan(opts, home)
	if err != nil {
		return report, err
	}
	report.DestDir = p.destDir
	report.ScriptPath = p.scriptDst
	report.RepoDir = p.repoDir
	report.Alias = alias.Alias{Name: opts.AliasName, Command: p.scriptDst}

	// Path placement is checked before the first mutation so an unsafe
	// checkout path never leaves a half-installed script behind.
	if err := checkRepoDirPlacement(p.repoDir, p.homeDir, p.destDir); err != nil {
		return report, err
	}

	if err := s.store.EnsureDir(p.destDir); err != nil {
		return report, err
	}
	report.Record(install.StepEnsureDestDir, install.StatusDone, p.destDir)

	present, err := s.store.Exists(p.scriptSrc)
	if err != nil {
		return report, err
	}
	if !present {
		return report, fmt.Errorf("%w: %s is not in %s", ErrScriptNotFound, opts.ScriptName, p.workDir)
	}
	report.Record(install.StepVerifyScript, install.StatusDone, p.scriptSrc)

	if err := s.checkRepoDir(p); err != nil {
		return report, err
	}

	if err := s.store.MakeExecutable(p.scriptSrc); err != nil {
		return report, err
	}
	report.Record(install.StepMakeExecutable, install.StatusDone, p.scriptSrc)

	if err := s.store.Move(p.scriptSrc, p.scriptDst); err != nil {
		return report, err
	}
	report.Record(install.StepMoveScript, install.StatusDone, p.scriptDst)
	s.logger.Debug("moved script", "from", p.scriptSrc, "to", p.scriptDst)

	profile, found, err := s.shellConfig.SelectProfile()
	if err != nil {
		return report, err
	}
	report.Profile = profile
	report.ProfileFound = found

	if found {
		report.Record(install.StepSelectProfile, install.StatusDone, profile.Path)

		if err := s.shellConfig.AppendAlias(profile, report.Alias); err != nil {
			return report, err
		}
		report.Record(install.StepAppendAlias, install.StatusDone, report.Alias.Line())

		if err := s.reloader.Reload(profile); err != nil {
			s.logger.Debug("profile reload failed", "err", err)
			report.Record(install.StepReloadProfile, install.StatusWarned, err.Error())
		} else {
			report.Record(install.StepReloadProfile, install.StatusDone, profile.Path)
		}
	} else {
		report.Record(install.StepSelectProfile, install.StatusWarned, "no .bashrc or .zshrc in "+home)
		report.Record(install.StepAppendAlias, install.StatusSkipped, report.Alias.Line())
		report.Record(install.StepReloadProfile, install.StatusSkipped, "")
	}

	if p.installerPath == "" {
		report.Record(install.StepRemoveInstaller, install.StatusSkipped, "")
	} else if err := s.store.RemoveFile(p.installerPath); err != nil {
		report.Record(install.StepRemoveInstaller, install.StatusWarned, err.Error())
	} else {
		report.Record(install.StepRemoveInstaller, install.StatusDone, p.installerPath)
	}

	if err := s.store.RemoveTree(p.repoDir); err != nil {
		return report, err
	}
	report.Record(install.StepRemoveRepo, install.StatusDone, p.repoDir)
	s.logger.Debug("removed repository", "dir", p.repoDir)

	return report, nil
}

func (s *service) checkRepoDir(p plan) error {
	info, err := s.store.Stat(p.repoDir)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnsafeRepoDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrUnsafeRepoDir, p.repoDir)
	}
	return nil
}
