// Package settings loads the tool's own preferences from
// .boostcfg/settings.yaml. These govern logging and the build history; they
// are unrelated to the training parameters that boostcfg resolves.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/harrison/boostcfg/internal/logger"
)

// HistoryConfig represents build history configuration
type HistoryConfig struct {
	// Enabled records every successful build
	Enabled bool `yaml:"enabled"`

	// DBPath is the path to the history database
	DBPath string `yaml:"db_path"`

	// KeepBuilds caps the number of stored builds (0 = unlimited)
	KeepBuilds int `yaml:"keep_builds"`
}

// Settings represents boostcfg tool options
type Settings struct {
	// LogLevel sets the console threshold (debug, info, warn, fatal)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where build logs are written; empty disables file logging
	LogDir string `yaml:"log_dir"`

	// Color enables colored console output when the terminal supports it
	Color bool `yaml:"color"`

	// History contains build history configuration
	History HistoryConfig `yaml:"history"`
}

// Default returns Settings with sensible default values
func Default() *Settings {
	return &Settings{
		LogLevel: "info",
		LogDir:   "",
		Color:    true,
		History: HistoryConfig{
			Enabled:    false,
			DBPath:     filepath.Join(".boostcfg", "history.db"),
			KeepBuilds: 500,
		},
	}
}

// Load loads settings from the specified file path.
// A missing file yields the defaults; a malformed one is an error.
func Load(path string) (*Settings, error) {
	s := Default()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var fileSettings Settings
	if err := yaml.Unmarshal(data, &fileSettings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	// Presence is checked on the raw map so that explicit false/zero values apply.
	var rawMap map[string]interface{}
	if err := yaml.Unmarshal(data, &rawMap); err != nil {
		return nil, fmt.Errorf("failed to parse settings file: %w", err)
	}

	if fileSettings.LogLevel != "" {
		s.LogLevel = fileSettings.LogLevel
	}
	if _, exists := rawMap["log_dir"]; exists {
		s.LogDir = fileSettings.LogDir
	}
	if _, exists := rawMap["color"]; exists {
		s.Color = fileSettings.Color
	}

	if section, exists := rawMap["history"]; exists && section != nil {
		historyMap, _ := section.(map[string]interface{})
		if _, exists := historyMap["enabled"]; exists {
			s.History.Enabled = fileSettings.History.Enabled
		}
		if _, exists := historyMap["db_path"]; exists {
			s.History.DBPath = fileSettings.History.DBPath
		}
		if _, exists := historyMap["keep_builds"]; exists {
			s.History.KeepBuilds = fileSettings.History.KeepBuilds
		}
	}

	return s, nil
}

// LoadFromDir loads .boostcfg/settings.yaml under dir.
func LoadFromDir(dir string) (*Settings, error) {
	return Load(filepath.Join(dir, ".boostcfg", "settings.yaml"))
}

// MergeWithFlags applies CLI flags over the loaded settings.
// Nil flags leave the corresponding setting alone.
func (s *Settings) MergeWithFlags(logLevel *string, logDir *string, color *bool, historyDB *string) {
	if logLevel != nil {
		s.LogLevel = *logLevel
	}
	if logDir != nil {
		s.LogDir = *logDir
	}
	if color != nil {
		s.Color = *color
	}
	if historyDB != nil {
		s.History.DBPath = *historyDB
	}
}

// Validate validates the settings values
func (s *Settings) Validate() error {
	if !logger.ValidLevel(s.LogLevel) {
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, fatal", s.LogLevel)
	}

	if s.History.Enabled && s.History.DBPath == "" {
		return fmt.Errorf("history.db_path cannot be empty when history is enabled")
	}
	if s.History.KeepBuilds < 0 {
		return fmt.Errorf("history.keep_builds must be >= 0, got %d", s.History.KeepBuilds)
	}

	return nil
}
