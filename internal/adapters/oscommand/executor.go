package oscommand

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/AntonioJCosta/batc-install/internal/core/ports"
)

// DefaultTimeout bounds a single pipeline run.
const DefaultTimeout = 10 * time.Second

// ErrTimeout is returned when a pipeline is killed for running too long.
var ErrTimeout = errors.New("command timed out")

// OSCommandExecutor implements the CommandExecutor interface using the operating system's shell.
type OSCommandExecutor struct {
	lookPath func(file string) (string, error)
	timeout  time.Duration
}

// NewOSCommandExecutor creates a new OSCommandExecutor.
func NewOSCommandExecutor() ports.CommandExecutor {
	return &OSCommandExecutor{lookPath: exec.LookPath, timeout: DefaultTimeout}
}

// Execute runs the given pipeline with the requested shell and returns its stdout, stderr, and any error.
// The shell is looked up in PATH by name; $SHELL and then /bin/sh are used when it is not installed.
func (e *OSCommandExecutor) Execute(shellName, pipeline string) (string, string, error) {
	shellExecPath := e.resolveShell(shellName)

	timeout := e.timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, shellExecPath, "-c", pipeline)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	// Background children of the pipeline may keep the output pipes open.
	cmd.WaitDelay = time.Second

	err := cmd.Run()
	stdout := outBuf.String()
	stderr := errBuf.String()

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return stdout, stderr, fmt.Errorf("%w after %s: shell '%s'", ErrTimeout, timeout, shellExecPath)
	}
	if err != nil {
		return stdout, stderr, fmt.Errorf("executing pipeline with shell '%s': %w. Stderr: %s", shellExecPath, err, strings.TrimSpace(stderr))
	}
	return stdout, stderr, nil
}

func (e *OSCommandExecutor) resolveShell(shellName string) string {
	if shellName != "" {
		if path, err := e.lookPath(shellName); err == nil {
			return path
		}
	}
	if shellPath := os.Getenv("SHELL"); shellPath != "" {
		return shellPath
	}
	return "/bin/sh"
}
