package board

import (
	"errors"
	"fmt"
	"strings"
)

// List identifies the column a task belongs to.
type List int

// The zero value is Backlog so a task can never be without a list.
const (
	Backlog List = iota
	ToDo
	Doing
	Done
)

// ErrUnknownList is returned when a name does not match any list.
var ErrUnknownList = errors.New("unknown list")

// Lists returns every list in column order.
func Lists() []List {
	return []List{Backlog, ToDo, Doing, Done}
}

// Valid reports whether l is one of the four lists.
func (l List) Valid() bool {
	return l >= Backlog && l <= Done
}

// Key returns the stable lowercase name of the list.
func (l List) Key() string {
	switch l {
	case Backlog:
		return "backlog"
	case ToDo:
		return "todo"
	case Doing:
		return "doing"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

func (l List) String() string {
	switch l {
	case Backlog:
		return "Backlog"
	case ToDo:
		return "To Do"
	case Doing:
		return "Doing"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// ParseList converts a key ("todo") or display name ("To Do") into a List.
// Matching is case-insensitive.
func ParseList(value string) (List, error) {
	normalized := strings.ToLower(strings.TrimSpace(value))
	for _, l := range Lists() {
		if normalized == l.Key() || normalized == strings.ToLower(l.String()) {
			return l, nil
		}
	}
	return Backlog, fmt.Errorf("%w %q (valid: backlog, todo, doing, done)", ErrUnknownList, value)
}
