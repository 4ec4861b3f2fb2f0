// Package config loads and persists solidDOJO configuration.
//
// Configuration lives in a single YAML file at <home>/config.yaml, where
// <home> defaults to ~/.dojo. Missing files are not an error: Load returns
// defaults so a fresh install works with zero setup. Environment variables
// override file values after parsing.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all solidDOJO configuration.
type Config struct {
	// Identity
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Terminal UI settings
	UI UIConfig `yaml:"ui"`

	// Lesson sources
	Lessons LessonsConfig `yaml:"lessons"`

	// Run history persistence
	History HistoryConfig `yaml:"history"`

	// Snippet playground
	Playground PlaygroundConfig `yaml:"playground"`

	// Debug logging
	Logging LoggingConfig `yaml:"logging"`
}

// UIConfig configures rendering and the study TUI.
type UIConfig struct {
	Theme   string `yaml:"theme"`    // auto, dark, light
	Width   int    `yaml:"width"`    // render width for markdown and tables
	NoColor bool   `yaml:"no_color"` // strip all styling
}

// LessonsConfig configures where lessons are loaded from.
type LessonsConfig struct {
	// Dir overrides the embedded lesson corpus with an on-disk directory.
	// Empty means the built-in lessons.
	Dir string `yaml:"dir"`
}

// HistoryConfig configures the run history store.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled"`

	// Path overrides the database location. Empty means <home>/dojo.db.
	Path string `yaml:"path"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "solidDOJO",
		Version: "1.0.0",

		UI: UIConfig{
			Theme: "auto",
			Width: 100,
		},

		History: HistoryConfig{
			Enabled: true,
		},

		Playground: PlaygroundConfig{
			Timeout:        "10s",
			AllowedImports: DefaultAllowedImports(),
		},

		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultHome returns the dojo state directory.
// Priority: DOJO_HOME environment variable, then ~/.dojo.
func DefaultHome() string {
	if home := os.Getenv("DOJO_HOME"); home != "" {
		return home
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".dojo"
	}
	return filepath.Join(userHome, ".dojo")
}

// ConfigPath returns the config file path inside a state directory.
func ConfigPath(home string) string {
	return filepath.Join(home, "config.yaml")
}

// DatabasePath returns the run history database path, honoring the
// history.path override.
func (c *Config) DatabasePath(home string) string {
	if c.History.Path != "" {
		return c.History.Path
	}
	return filepath.Join(home, "dojo.db")
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Return defaults if config file doesn't exist
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// Override with environment variables
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if theme := os.Getenv("DOJO_THEME"); theme != "" {
		c.UI.Theme = theme
	}

	// NO_COLOR is honored when set to any non-empty value (no-color.org).
	if os.Getenv("NO_COLOR") != "" {
		c.UI.NoColor = true
	}

	if dir := os.Getenv("DOJO_LESSONS_DIR"); dir != "" {
		c.Lessons.Dir = dir
	}
}

// ValidThemes lists all supported UI themes.
var ValidThemes = []string{"auto", "dark", "light"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	validTheme := false
	for _, t := range ValidThemes {
		if c.UI.Theme == t {
			validTheme = true
			break
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.UI.Theme, ValidThemes)
	}

	if c.UI.Width < 0 {
		return fmt.Errorf("invalid width: %d (must be >= 0)", c.UI.Width)
	}

	if _, err := c.Playground.ParseTimeout(); err != nil {
		return fmt.Errorf("invalid playground timeout: %w", err)
	}

	return nil
}
