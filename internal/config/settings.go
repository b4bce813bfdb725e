package config

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
)

// Color modes
const (
	ColorAlways = "always"
	ColorAuto   = "auto"
	ColorNever  = "never"
)

// Defaults shared by the CLI flags and settings precedence checks
const (
	DefaultColor          = ColorAuto
	DefaultLimit          = 30
	DefaultState          = "open"
	DefaultTimeoutSeconds = 30
)

// ValidStates are the values accepted by `gh pr list --state`
var ValidStates = []string{"open", "closed", "merged", "all"}

// Settings represents the structure of ~/.proot/settings.json
type Settings struct {
	Color          string      `json:"color,omitempty"`
	Debug          *bool       `json:"debug,omitempty"`
	Limit          *int        `json:"limit,omitempty"`
	MaxLogFiles    *int        `json:"max_log_files,omitempty"`
	Repos          StringArray `json:"repos,omitempty"`
	SortChildren   *bool       `json:"sort_children,omitempty"`
	State          string      `json:"state,omitempty"`
	TimeoutSeconds *int        `json:"timeout_seconds,omitempty"`
}

// Validate checks enumerated and numeric settings
func (s *Settings) Validate() error {
	if s.Color != "" && !slices.Contains([]string{ColorAlways, ColorAuto, ColorNever}, s.Color) {
		return fmt.Errorf("invalid color '%s' (expected always, auto or never)", s.Color)
	}
	if s.State != "" && !slices.Contains(ValidStates, s.State) {
		return fmt.Errorf("invalid state '%s' (expected %s)", s.State, strings.Join(ValidStates, ", "))
	}
	if s.Limit != nil && *s.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", *s.Limit)
	}
	if s.TimeoutSeconds != nil && *s.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", *s.TimeoutSeconds)
	}
	return nil
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $PROOT_HOME/settings.json
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path. A missing file yields empty settings.
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}
