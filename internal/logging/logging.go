package logging

import (
	"cmp"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"

	"github.com/google/uuid"
)

// DefaultMaxLogFiles is the number of debug log files kept when not configured
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug logging.
var Logger = slog.New(slog.DiscardHandler)

// Config selects where debug logs go
type Config struct {
	Debug       bool
	File        string // Fixed log file; never rotated
	MaxLogFiles int    // 0 = unlimited
}

// withEnv merges PROOT_DEBUG, PROOT_DEBUG_FILE and PROOT_MAX_LOG_FILES.
// Values already set on cfg win.
func (cfg Config) withEnv() Config {
	if os.Getenv("PROOT_DEBUG") == "1" {
		cfg.Debug = true
	}
	if cfg.File == "" {
		cfg.File = os.Getenv("PROOT_DEBUG_FILE")
	}
	if cfg.MaxLogFiles == DefaultMaxLogFiles {
		if n, err := strconv.Atoi(os.Getenv("PROOT_MAX_LOG_FILES")); err == nil {
			cfg.MaxLogFiles = n
		}
	}
	return cfg
}

func (cfg Config) enabled() bool {
	return cfg.Debug || cfg.File != ""
}

// Initialize points Logger at a debug log file, or discards when debugging is off.
// Returns the log file path, or "" when nothing is logged.
func Initialize(cfg Config) (string, error) {
	cfg = cfg.withEnv()
	if !cfg.enabled() {
		Logger = slog.New(slog.DiscardHandler)
		return "", nil
	}

	path, err := cfg.logFilePath()
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	Logger.Info("Debug logging initialized", "log_file", path, "pid", os.Getpid())
	return path, nil
}

// logFilePath prepares the directory for the log file and returns its path.
// Generated files are named <uuid>.log and rotated in the state directory.
func (cfg Config) logFilePath() (string, error) {
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0755); err != nil {
			return "", fmt.Errorf("failed to create log directory: %w", err)
		}
		return cfg.File, nil
	}

	dir, err := logDir(runtime.GOOS)
	if err != nil {
		return "", fmt.Errorf("failed to get log directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	if cfg.MaxLogFiles > 0 {
		if err := rotateLogs(dir, cfg.MaxLogFiles); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
		}
	}
	return filepath.Join(dir, uuid.NewString()+".log"), nil
}

// rotateLogs keeps the newest maxLogFiles-1 .log files in dir, leaving room for one more
func rotateLogs(dir string, maxLogFiles int) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	var logs []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		if info, err := entry.Info(); err == nil {
			logs = append(logs, info)
		}
	}

	excess := len(logs) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b os.FileInfo) int {
		return cmp.Compare(a.ModTime().UnixNano(), b.ModTime().UnixNano())
	})
	for _, info := range logs[:excess] {
		path := filepath.Join(dir, info.Name())
		if err := os.Remove(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", path, err)
		}
	}
	return nil
}

// logDir returns the per-OS state directory for proot logs
func logDir(goos string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch goos {
	case "darwin":
		return filepath.Join(home, "Library", "Logs", "proot"), nil
	case "linux":
		return filepath.Join(envOr("XDG_STATE_HOME", filepath.Join(home, ".local", "state")), "proot"), nil
	case "windows":
		return filepath.Join(envOr("LOCALAPPDATA", filepath.Join(home, "AppData", "Local")), "proot", "logs"), nil
	default:
		return filepath.Join(home, ".proot", "logs"), nil
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
