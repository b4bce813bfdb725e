package harness

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"
)

// fakeGHScript stands in for gh: it records its arguments, then either hangs
// for FAKE_GH_SLEEP seconds or prints the configured stdout file and stderr
// message and exits with the given code.
const fakeGHScript = `#!/bin/sh
printf '%s\n' "$*" >> "$FAKE_GH_ARGS"
if [ -n "$FAKE_GH_SLEEP" ]; then
	exec sleep "$FAKE_GH_SLEEP"
fi
if [ -n "$FAKE_GH_STDERR" ]; then
	printf '%s\n' "$FAKE_GH_STDERR" >&2
fi
if [ -f "$FAKE_GH_STDOUT" ]; then
	cat "$FAKE_GH_STDOUT"
fi
exit "${FAKE_GH_EXIT:-0}"
`

// TestEnvironment provides an isolated test environment with its own
// PROOT_HOME and a fake gh on PATH.
type TestEnvironment struct {
	ProotHome string
	Timeout   time.Duration // Upper bound for each RunCommand
	binDir    string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment.
// The temp directories are automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	if runtime.GOOS == "windows" {
		tb.Skip("fake gh is a POSIX shell script")
	}

	env := &TestEnvironment{
		ProotHome: tb.TempDir(),
		Timeout:   30 * time.Second,
		binDir:    tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}

	if err := os.WriteFile(filepath.Join(env.binDir, "gh"), []byte(fakeGHScript), 0755); err != nil {
		tb.Fatalf("Failed to write fake gh: %v", err)
	}
	env.extraEnv["FAKE_GH_ARGS"] = filepath.Join(env.binDir, "args.log")

	return env
}

// Environ returns environment variables configured for test isolation.
// It filters out PROOT_* variables and sets PROOT_HOME, NO_COLOR and PATH.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+3+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "PROOT_") || key == "PATH" || key == "NO_COLOR" {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"PROOT_HOME="+e.ProotHome,
		"NO_COLOR=1",
		"PATH="+e.binDir+string(os.PathListSeparator)+os.Getenv("PATH"),
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// GHOutput makes the fake gh print output on stdout
func (e *TestEnvironment) GHOutput(output string) {
	e.tb.Helper()
	path := filepath.Join(e.binDir, "stdout")
	if err := os.WriteFile(path, []byte(output), 0644); err != nil {
		e.tb.Fatalf("Failed to write fake gh output: %v", err)
	}
	e.extraEnv["FAKE_GH_STDOUT"] = path
}

// GHFailure makes the fake gh print stderr and exit with code
func (e *TestEnvironment) GHFailure(stderr string, code int) {
	e.extraEnv["FAKE_GH_STDERR"] = stderr
	e.extraEnv["FAKE_GH_EXIT"] = strconv.Itoa(code)
}

// GHHang makes the fake gh sleep for seconds instead of answering
func (e *TestEnvironment) GHHang(seconds int) {
	e.extraEnv["FAKE_GH_SLEEP"] = strconv.Itoa(seconds)
}

// GHCalls returns the argument lists the fake gh was invoked with, one per call
func (e *TestEnvironment) GHCalls() []string {
	e.tb.Helper()
	data, err := os.ReadFile(e.extraEnv["FAKE_GH_ARGS"])
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		e.tb.Fatalf("Failed to read fake gh calls: %v", err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// WriteSettings writes settings.json into PROOT_HOME
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()
	if err := os.WriteFile(filepath.Join(e.ProotHome, "settings.json"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
