package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// BuildVersion is stamped into the test binary through -ldflags
const BuildVersion = "integration"

// built is the proot binary shared by every test in the run
var built struct {
	once sync.Once
	dir  string
	path string
	err  error
}

// CommandResult holds the outcome of one proot invocation
type CommandResult struct {
	Duration time.Duration
	ExitCode int // -1 when the process did not exit on its own
	Stderr   string
	Stdout   string
}

// BuildBinary compiles proot into a temp directory once per test run.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	built.once.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			built.err = err
			return
		}

		built.dir, err = os.MkdirTemp("", "proot-integration-*")
		if err != nil {
			built.err = err
			return
		}
		built.path = filepath.Join(built.dir, "proot")

		ldflags := "-X proot/version.Version=" + BuildVersion
		cmd := exec.Command("go", "build", "-trimpath", "-ldflags", ldflags, "-o", built.path, ".")
		cmd.Dir = root
		if out, err := cmd.CombinedOutput(); err != nil {
			built.err = fmt.Errorf("go build failed: %w\n%s", err, out)
		}
	})
	return built.path, built.err
}

// CleanupBinary removes the temp directory holding the binary.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if built.dir == "" {
		return
	}
	if err := os.RemoveAll(built.dir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to remove %s: %v\n", built.dir, err)
	}
}

// RunCommand runs proot with args inside env, bounded by env.Timeout
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), env.Timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, built.path, args...)
	cmd.Env = env.Environ()
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	start := time.Now()
	err := cmd.Run()
	result := CommandResult{
		Duration: time.Since(start),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}

	var exitErr *exec.ExitError
	switch {
	case ctx.Err() != nil:
		tb.Errorf("proot %v did not finish within %v", args, env.Timeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Errorf("failed to run proot %v: %v", args, err)
		result.ExitCode = -1
	}
	return result
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
