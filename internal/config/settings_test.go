package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadSettingsFrom_MissingFile(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "nope.json"))

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFrom_AllFields(t *testing.T) {
	path := writeSettings(t, `{
		"color": "never",
		"debug": true,
		"limit": 100,
		"max_log_files": 5,
		"repos": ["cli/cli", "octo/repo"],
		"sort_children": true,
		"state": "all",
		"timeout_seconds": 10
	}`)

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, ColorNever, settings.Color)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.Limit)
	assert.Equal(t, 100, *settings.Limit)
	require.NotNil(t, settings.MaxLogFiles)
	assert.Equal(t, 5, *settings.MaxLogFiles)
	assert.Equal(t, StringArray{"cli/cli", "octo/repo"}, settings.Repos)
	require.NotNil(t, settings.SortChildren)
	assert.True(t, *settings.SortChildren)
	assert.Equal(t, "all", settings.State)
	require.NotNil(t, settings.TimeoutSeconds)
	assert.Equal(t, 10, *settings.TimeoutSeconds)
}

func TestLoadSettingsFrom_CommaSeparatedRepos(t *testing.T) {
	path := writeSettings(t, `{"repos": "cli/cli, octo/repo ,"}`)

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, StringArray{"cli/cli", "octo/repo"}, settings.Repos)
}

func TestLoadSettingsFrom_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{"malformed json", `{"color": `, "invalid settings.json"},
		{"bad color", `{"color": "sometimes"}`, "invalid color"},
		{"bad state", `{"state": "draft"}`, "invalid state"},
		{"zero limit", `{"limit": 0}`, "limit must be positive"},
		{"negative timeout", `{"timeout_seconds": -1}`, "timeout_seconds must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSettingsFrom(writeSettings(t, tt.content))

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestGetSettingsPath_ProotHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("PROOT_HOME", home)

	assert.Equal(t, filepath.Join(home, "settings.json"), GetSettingsPath())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "proot"), ExpandPath("~/proot"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
}
