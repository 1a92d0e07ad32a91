package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pablasso/kanban/internal/board"
	"github.com/pablasso/kanban/internal/config"
	"github.com/pablasso/kanban/internal/logging"
	"github.com/pablasso/kanban/internal/tui"
	"github.com/pablasso/kanban/internal/version"
)

var (
	cfgFile string

	// Loaded by loadConfig before any command that needs them runs.
	cfg    *config.Config
	logger *logging.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kanban",
	Short: "Terminal kanban board",
	Long: `Kanban is a four-column task board for the terminal.

Tasks start in Backlog. Select them with space and move every selected
task at once with 1-4 (Backlog, To Do, Doing, Done).`,
	Version:           version.Version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
	RunE:              runBoard,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "", "config file (default is $XDG_CONFIG_HOME/kanban/config.yaml)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-file", "", "append JSON logs to this file")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	defer closeLogger()
	return rootCmd.Execute()
}

// loadConfig reads flags, environment and config file into cfg and builds
// the logger from it.
func loadConfig(cmd *cobra.Command, args []string) error {
	v := viper.New()
	flags := cmd.Root().PersistentFlags()
	// Flags only win over file and environment when set explicitly
	_ = v.BindPFlag("logging.level", flags.Lookup("log-level"))
	_ = v.BindPFlag("logging.file", flags.Lookup("log-file"))

	if err := config.Init(v, cfgFile); err != nil {
		return err
	}
	loaded, err := config.Load(v)
	if err != nil {
		return err
	}

	l, err := logging.New(loaded.Logging)
	if err != nil {
		return err
	}

	closeLogger()
	cfg, logger = loaded, l
	logger.Run().WithField("config", v.ConfigFileUsed()).Debug("configuration loaded")
	return nil
}

func closeLogger() {
	if logger != nil {
		_ = logger.Close()
	}
}

func runBoard(cmd *cobra.Command, args []string) error {
	log := logger.Run()
	store := board.NewStore(board.WithLogger(log))

	log.Info("starting board")
	err := tui.Run(store, tui.Options{
		AltScreen:   cfg.TUI.AltScreen,
		ColumnWidth: cfg.TUI.ColumnWidth,
		Logger:      log,
	})
	if err != nil {
		return fmt.Errorf("failed to run board: %w", err)
	}
	log.WithField("tasks", store.Len()).Info("board closed")
	return nil
}
