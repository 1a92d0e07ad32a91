package demo

import (
	"fmt"
	"strings"

	"github.com/pablasso/kanban/internal/board"
	"github.com/pablasso/kanban/internal/util"
)

// Scenario names a scripted sequence of board operations.
type Scenario string

const (
	ScenarioBasic      Scenario = "basic"
	ScenarioEmptyTitle Scenario = "empty-title"
	ScenarioRoundTrip  Scenario = "round-trip"
)

// Scenarios returns every scenario in help order.
func Scenarios() []Scenario {
	return []Scenario{ScenarioBasic, ScenarioEmptyTitle, ScenarioRoundTrip}
}

func ParseScenario(value string) (Scenario, error) {
	switch Scenario(strings.ToLower(strings.TrimSpace(value))) {
	case ScenarioBasic, ScenarioEmptyTitle, ScenarioRoundTrip:
		return Scenario(strings.ToLower(strings.TrimSpace(value))), nil
	default:
		return "", fmt.Errorf("invalid demo scenario %q (valid: basic, empty-title, round-trip)", value)
	}
}

// Step is one user intent applied to the store.
// Apply returns a short note for the output, or "" when there is nothing to add.
type Step struct {
	Label string
	Apply func(*board.Store) string
}

// Script returns the steps for a scenario.
//
// Scenario behavior:
//   - basic: three tasks are created, two are selected and moved to Doing,
//     then one of them moves on to Done
//   - empty-title: empty and blank titles are rejected, then a move with
//     nothing selected still republishes the board
//   - round-trip: one task walks Backlog → To Do → Doing → Done → Backlog
func Script(scenario Scenario) ([]Step, error) {
	switch scenario {
	case ScenarioBasic:
		return []Step{
			createStep("write docs"),
			createStep("build store"),
			createStep("ship it"),
			toggleStep(0),
			toggleStep(1),
			moveStep(board.Doing),
			toggleStep(1),
			moveStep(board.Done),
		}, nil

	case ScenarioEmptyTitle:
		return []Step{
			createStep(""),
			createStep("   "),
			createStep("real task"),
			moveStep(board.ToDo),
		}, nil

	case ScenarioRoundTrip:
		steps := []Step{createStep("test item")}
		for _, target := range []board.List{board.ToDo, board.Doing, board.Done, board.Backlog} {
			steps = append(steps, toggleStep(0), moveStep(target))
		}
		return steps, nil
	}
	return nil, fmt.Errorf("unknown demo scenario %q", scenario)
}

func createStep(title string) Step {
	return Step{
		Label: fmt.Sprintf("create %q", title),
		Apply: func(s *board.Store) string {
			if _, ok := s.CreateTask(title); !ok {
				return "rejected: title is blank"
			}
			return ""
		},
	}
}

// toggleStep toggles the task created at index.
func toggleStep(index int) Step {
	id := util.GenerateTaskID(index)
	return Step{
		Label: "toggle " + id,
		Apply: func(s *board.Store) string {
			if !s.ToggleSelection(id) {
				return "unknown task " + id
			}
			return ""
		},
	}
}

func moveStep(target board.List) Step {
	return Step{
		Label: "move selected to " + target.String(),
		Apply: func(s *board.Store) string {
			moved := s.MoveSelected(target)
			if moved == 1 {
				return "moved 1 task"
			}
			return fmt.Sprintf("moved %d tasks", moved)
		},
	}
}
