package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/pablasso/kanban/internal/testutil"
	"github.com/pablasso/kanban/internal/version"
)

// executeCommand runs a cobra command with args and returns captured output
func executeCommand(t *testing.T, root *cobra.Command, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// isolate keeps user config and earlier flag values out of a test.
func isolate(t *testing.T) {
	t.Helper()

	testutil.IsolateConfig(t)

	t.Cleanup(func() {
		closeLogger()
		logger, cfg = nil, nil
		resetFlags(rootCmd.PersistentFlags())
		resetFlags(demoCmd.Flags())
	})
}

func resetFlags(flags *pflag.FlagSet) {
	flags.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "kanban" {
		t.Errorf("rootCmd.Use = %q, want %q", rootCmd.Use, "kanban")
	}

	expectedCmds := []string{"demo", "version"}
	cmdMap := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		cmdMap[cmd.Name()] = true
	}
	for _, expected := range expectedCmds {
		if !cmdMap[expected] {
			t.Errorf("expected subcommand %q not found", expected)
		}
	}

	for _, name := range []string{"config", "log-level", "log-file"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("expected persistent flag --%s", name)
		}
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, rootCmd, "nope")
	if err == nil {
		t.Fatal("expected error for unknown command")
	}
}

func TestVersionCommand(t *testing.T) {
	isolate(t)

	output, err := executeCommand(t, rootCmd, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.Contains(output, "kanban "+version.Version) {
		t.Errorf("expected version line, got %q", output)
	}
	if !strings.Contains(output, "commit: "+version.CommitSHA) {
		t.Errorf("expected commit line, got %q", output)
	}
}

func TestVersionCommand_IgnoresBrokenConfig(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tui:\n  column_width: 2\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := executeCommand(t, rootCmd, "--config", path, "version"); err != nil {
		t.Fatalf("expected version to work with an invalid config, got %v", err)
	}
}

func TestDemoCommand_Scenarios(t *testing.T) {
	tests := []struct {
		scenario string
		want     []string
	}{
		{"basic", []string{"== step 6: move selected to Doing", "Write Docs"}},
		{"empty-title", []string{"-> rejected: title is blank", "Real Task"}},
		{"round-trip", []string{"== step 9: move selected to Backlog", "Test Item"}},
	}

	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			isolate(t)

			output, err := executeCommand(t, rootCmd, "demo", "--scenario", tt.scenario)
			if err != nil {
				t.Fatalf("demo failed: %v\n%s", err, output)
			}
			for _, want := range tt.want {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestDemoCommand_UnknownScenario(t *testing.T) {
	isolate(t)

	output, err := executeCommand(t, rootCmd, "demo", "--scenario", "chaos")
	if err == nil {
		t.Fatal("expected error for unknown scenario")
	}
	for _, name := range []string{"basic", "empty-title", "round-trip"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("expected error to list %q, got %v", name, err)
		}
	}
	if strings.Contains(output, "LIST") {
		t.Errorf("expected no board output, got:\n%s", output)
	}
}

func TestDemoCommand_UnknownPreset(t *testing.T) {
	isolate(t)

	_, err := executeCommand(t, rootCmd, "demo", "--preset", "warp")
	if err == nil || !strings.Contains(err.Error(), "invalid demo preset") {
		t.Fatalf("expected preset error, got %v", err)
	}
}

func TestDemoCommand_InvalidConfig(t *testing.T) {
	isolate(t)
	t.Setenv("KANBAN_TUI_COLUMN_WIDTH", "5")

	_, err := executeCommand(t, rootCmd, "demo")
	if err == nil || !strings.Contains(err.Error(), "tui.column_width") {
		t.Fatalf("expected config validation error, got %v", err)
	}
}

func TestDemoCommand_WritesLogFile(t *testing.T) {
	isolate(t)
	logPath := filepath.Join(t.TempDir(), "logs", "kanban.log")

	_, err := executeCommand(t, rootCmd, "--log-level", "debug", "--log-file", logPath, "demo", "--scenario", "round-trip")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.File != logPath {
		t.Errorf("expected flags to override config, got %+v", cfg.Logging)
	}
	closeLogger()

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	content := string(data)
	for _, want := range []string{`"msg":"starting demo"`, `"msg":"task created"`, `"msg":"selection moved"`, `"run_id":"` + logger.RunID() + `"`} {
		if !strings.Contains(content, want) {
			t.Errorf("expected log to contain %s, got:\n%s", want, content)
		}
	}
}

func TestLoadConfig_FlagOverridesEnvironment(t *testing.T) {
	isolate(t)
	t.Setenv("KANBAN_LOGGING_LEVEL", "error")

	if _, err := executeCommand(t, rootCmd, "demo"); err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("expected environment level, got %q", cfg.Logging.Level)
	}

	if _, err := executeCommand(t, rootCmd, "--log-level", "warn", "demo"); err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected flag level to win, got %q", cfg.Logging.Level)
	}
}
