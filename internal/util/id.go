package util

import "fmt"

// GenerateTaskID returns a task ID in the format t01, t02, ..., t99, t100, etc.
// The index is the task's zero-based position on the board.
func GenerateTaskID(index int) string {
	return fmt.Sprintf("t%02d", index+1)
}
