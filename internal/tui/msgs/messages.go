// Package msgs defines shared message types for the TUI.
package msgs

import "github.com/pablasso/kanban/internal/board"

// BoardUpdatedMsg carries the snapshot published by the store after a change.
type BoardUpdatedMsg struct {
	Tasks []board.Task
}

// ClearHintMsg removes a transient hint if it is still the one identified by Seq.
type ClearHintMsg struct {
	Seq int
}
