// Package config loads kanban settings through viper.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. KANBAN_LOGGING_LEVEL.
const EnvPrefix = "KANBAN"

// Config represents the complete kanban configuration
type Config struct {
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// TUIConfig controls the terminal board
type TUIConfig struct {
	// AltScreen runs the board in the terminal's alternate screen (default: true)
	AltScreen bool `mapstructure:"alt_screen"`
	// ColumnWidth is the width of each list column in cells (default: 28, min: 16, max: 80)
	ColumnWidth int `mapstructure:"column_width"`
}

// LoggingConfig controls the debug log
type LoggingConfig struct {
	// Level is one of debug, info, warn, error (default: info)
	Level string `mapstructure:"level"`
	// File receives JSON log lines. Empty discards logs because the TUI owns the terminal.
	File string `mapstructure:"file"`
}

const (
	minColumnWidth = 16
	maxColumnWidth = 80
)

// Default returns a Config with sensible default values
func Default() *Config {
	return &Config{
		TUI: TUIConfig{
			AltScreen:   true,
			ColumnWidth: 28,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// SetDefaults registers default values with v
func SetDefaults(v *viper.Viper) {
	defaults := Default()

	v.SetDefault("tui.alt_screen", defaults.TUI.AltScreen)
	v.SetDefault("tui.column_width", defaults.TUI.ColumnWidth)

	v.SetDefault("logging.level", defaults.Logging.Level)
	v.SetDefault("logging.file", defaults.Logging.File)
}

// Init points v at the config file (or the default search path), enables
// environment overrides and reads the file if one exists.
func Init(v *viper.Viper, cfgFile string) error {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(ConfigDir())
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	// KANBAN_LOGGING_LEVEL for logging.level
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Load reads the configuration from v into a Config struct and validates it
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kanban")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kanban"
	}
	return filepath.Join(home, ".config", "kanban")
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if c.TUI.ColumnWidth < minColumnWidth || c.TUI.ColumnWidth > maxColumnWidth {
		errors = append(errors, ValidationError{
			Field:   "tui.column_width",
			Value:   c.TUI.ColumnWidth,
			Message: fmt.Sprintf("must be between %d and %d", minColumnWidth, maxColumnWidth),
		})
	}

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.column_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}
