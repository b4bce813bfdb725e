package gh

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"proot/internal/logging"
	"proot/internal/ports"
)

// ErrNotInstalled is returned when the gh binary cannot be found on PATH
var ErrNotInstalled = errors.New("gh CLI not found, install it from https://cli.github.com")

const waitDelay = time.Second

// CommandError describes a failed gh invocation
type CommandError struct {
	Args   []string
	Err    error
	Stderr string
}

func (e *CommandError) Error() string {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return fmt.Sprintf("gh %s timed out (raise --timeout): %v", strings.Join(e.Args, " "), e.Err)
	}
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("failed to run gh %s: %v", strings.Join(e.Args, " "), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ExecRunner runs commands on the local machine
type ExecRunner struct{}

// Compile-time interface verification
var _ ports.CommandRunner = (*ExecRunner)(nil)

// NewExecRunner creates a new ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes name with args and returns its standard output.
// A non-zero exit status yields a CommandError carrying the trimmed stderr.
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	if _, err := exec.LookPath(name); err != nil {
		logging.Logger.Debug("Command not found on PATH", "command", name)
		return nil, &CommandError{Args: args, Err: ErrNotInstalled}
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr
	// Children of gh may keep the output pipes open after it is killed
	cmd.WaitDelay = waitDelay

	logging.Logger.Debug("Running command", "command", name, "args", args)
	output, err := cmd.Output()
	if ctxErr := ctx.Err(); err != nil && ctxErr != nil {
		logging.Logger.Debug("Command cancelled", "command", name, "error", ctxErr)
		return nil, &CommandError{Args: args, Err: ctxErr}
	}
	if err != nil {
		logging.Logger.Debug("Command failed", "command", name, "error", err, "stderr", stderr.String())
		return nil, &CommandError{
			Args:   args,
			Err:    err,
			Stderr: strings.TrimSpace(stderr.String()),
		}
	}

	return output, nil
}
