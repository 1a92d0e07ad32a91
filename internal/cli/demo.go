package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/kanban/internal/board"
	"github.com/pablasso/kanban/internal/demo"
)

var (
	demoScenario string
	demoPreset   string
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Play a scripted scenario and print the board after every change",
	Long: `Run a scripted scenario against a fresh board and print the board as a
table each time it changes. Nothing is interactive and nothing is saved.

Scenarios:
  basic        Create three tasks, move two to Doing, one on to Done (default)
  empty-title  Empty and blank titles are rejected
  round-trip   One task walks through every list and back to Backlog

Presets:
  quick        No pause between steps (default)
  medium       400ms between steps
  slow         1.5s between steps`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&demoScenario, "scenario", string(demo.ScenarioBasic),
		"Demo scenario: basic, empty-title, round-trip")
	demoCmd.Flags().StringVar(&demoPreset, "preset", string(demo.PresetQuick),
		"Playback pace: quick, medium, slow")
}

func runDemo(cmd *cobra.Command, args []string) error {
	scenario, err := demo.ParseScenario(demoScenario)
	if err != nil {
		return err
	}
	preset, err := demo.ParsePreset(demoPreset)
	if err != nil {
		return err
	}

	config, err := demo.NewConfig(scenario, preset)
	if err != nil {
		return err
	}

	log := logger.Run().WithField("scenario", scenario)
	store := board.NewStore(board.WithLogger(log))
	log.Info("starting demo")

	if err := demo.NewRunner(config, store, cmd.OutOrStdout()).Run(cmd.Context()); err != nil {
		return fmt.Errorf("demo %s failed: %w", scenario, err)
	}
	return nil
}
