package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/pablasso/kanban/internal/testutil"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if !cfg.TUI.AltScreen {
		t.Error("TUI.AltScreen should be true by default")
	}
	if cfg.TUI.ColumnWidth != 28 {
		t.Errorf("TUI.ColumnWidth = %d, want 28", cfg.TUI.ColumnWidth)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "info")
	}
	if cfg.Logging.File != "" {
		t.Errorf("Logging.File = %q, want empty", cfg.Logging.File)
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should be valid, got %v", errs)
	}
}

func TestLoad_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if *cfg != *Default() {
		t.Errorf("Load() = %+v, want %+v", *cfg, *Default())
	}
}

func TestInit_ReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "tui:\n  alt_screen: false\n  column_width: 40\nlogging:\n  level: debug\n  file: /tmp/kanban.log\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	v := viper.New()
	if err := Init(v, path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.TUI.AltScreen {
		t.Error("TUI.AltScreen should be false from file")
	}
	if cfg.TUI.ColumnWidth != 40 {
		t.Errorf("TUI.ColumnWidth = %d, want 40", cfg.TUI.ColumnWidth)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Logging.File != "/tmp/kanban.log" {
		t.Errorf("Logging.File = %q, want /tmp/kanban.log", cfg.Logging.File)
	}
}

func TestInit_MissingDefaultFileIsNotAnError(t *testing.T) {
	testutil.IsolateConfig(t)

	v := viper.New()
	if err := Init(v, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.TUI.ColumnWidth != 28 {
		t.Errorf("expected defaults without a file, got column width %d", cfg.TUI.ColumnWidth)
	}
}

func TestInit_ExplicitMissingFileErrors(t *testing.T) {
	v := viper.New()
	err := Init(v, filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for explicit missing config file")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestInit_EnvironmentOverride(t *testing.T) {
	testutil.IsolateConfig(t)
	t.Setenv("KANBAN_LOGGING_LEVEL", "warn")
	t.Setenv("KANBAN_TUI_COLUMN_WIDTH", "32")

	v := viper.New()
	if err := Init(v, ""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	cfg, err := Load(v)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn", cfg.Logging.Level)
	}
	if cfg.TUI.ColumnWidth != 32 {
		t.Errorf("TUI.ColumnWidth = %d, want 32", cfg.TUI.ColumnWidth)
	}
}

func TestLoad_ValidationErrors(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("tui.column_width", 4)
	v.Set("logging.level", "verbose")

	_, err := Load(v)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if len(verrs) != 2 {
		t.Fatalf("expected 2 validation errors, got %d: %v", len(verrs), verrs)
	}
	if !strings.Contains(err.Error(), "2 validation errors") {
		t.Errorf("expected aggregate message, got %q", err.Error())
	}
	if verrs[0].Field != "tui.column_width" {
		t.Errorf("first error field = %q, want tui.column_width", verrs[0].Field)
	}
	if verrs[1].Field != "logging.level" {
		t.Errorf("second error field = %q, want logging.level", verrs[1].Field)
	}
}

func TestValidate_LogLevelCaseInsensitive(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "DEBUG"
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("expected uppercase level to be accepted, got %v", errs)
	}
}

func TestValidationError_Single(t *testing.T) {
	errs := ValidationErrors{{Field: "tui.column_width", Value: 2, Message: "too small"}}
	want := "tui.column_width: too small (got: 2)"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}
}

func TestConfigDir(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got := ConfigDir(); got != filepath.Join(xdg, "kanban") {
		t.Errorf("ConfigDir() = %q, want %q", got, filepath.Join(xdg, "kanban"))
	}
}
