package config

import (
	"os"
	"path/filepath"
)

// GetProotHome returns PROOT_HOME or ~/.proot default
func GetProotHome() string {
	prootHome := os.Getenv("PROOT_HOME")
	if prootHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".proot"
		}
		return filepath.Join(homeDir, ".proot")
	}
	return ExpandPath(prootHome)
}

// GetSettingsPath returns $PROOT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetProotHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
