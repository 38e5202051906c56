/*
Package profilereload sources a shell profile in a child shell after the
installer has modified it.
*/
package profilereload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AntonioJCosta/batc-install/internal/core/domain/shell"
	"github.com/AntonioJCosta/batc-install/internal/core/ports"
	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

// ErrProfileSyntax is returned when a bash profile does not parse; the
// profile is not sourced in that case.
var ErrProfileSyntax = errors.New("shell profile has a syntax error")

// Reloader implements ports.ProfileReloader.
type Reloader struct {
	executor ports.CommandExecutor
	logger   *log.Logger
}

// NewReloader creates a Reloader that runs the profile through executor.
// It panics if executor is nil.
func NewReloader(executor ports.CommandExecutor, logger *log.Logger) ports.ProfileReloader {
	if executor == nil {
		panic("executor cannot be nil")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Reloader{executor: executor, logger: logger}
}

// Reload parses bash profiles before sourcing them. zsh profiles go straight
// to the shell, since the parser has no zsh dialect.
func (r *Reloader) Reload(profile shell.Profile) error {
	if profile.Shell == shell.Bash {
		if err := checkBashSyntax(profile.Path); err != nil {
			return err
		}
	}

	quoted, err := syntax.Quote(profile.Path, syntax.LangBash)
	if err != nil {
		return fmt.Errorf("cannot quote profile path %s: %w", profile.Path, err)
	}

	r.logger.Debug("sourcing shell profile", "shell", profile.Shell, "path", profile.Path)
	if _, _, err := r.executor.Execute(string(profile.Shell), ". "+quoted); err != nil {
		return fmt.Errorf("failed to reload %s: %w", profile.Path, err)
	}
	return nil
}

func checkBashSyntax(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	parser := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := parser.Parse(f, path); err != nil {
		return fmt.Errorf("%w: %v", ErrProfileSyntax, err)
	}
	return nil
}
