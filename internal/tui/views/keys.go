package views

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/pablasso/kanban/internal/board"
)

// boardKeyMap holds the bindings for the board view.
type boardKeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	New    key.Binding
	Move   map[board.List]key.Binding
	Quit   key.Binding

	Submit key.Binding
	Cancel key.Binding
}

func defaultBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←→", "Column")),
		Right:  key.NewBinding(key.WithKeys("right", "l")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑↓", "Navigate")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Toggle: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "Select")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "New task")),
		Move: map[board.List]key.Binding{
			board.Backlog: key.NewBinding(key.WithKeys("1"), key.WithHelp("1-4", "Move selected")),
			board.ToDo:    key.NewBinding(key.WithKeys("2")),
			board.Doing:   key.NewBinding(key.WithKeys("3")),
			board.Done:    key.NewBinding(key.WithKeys("4")),
		},
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "Quit")),

		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("Enter", "Create")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("Esc", "Cancel")),
	}
}

// boardHelp is shown in the status bar while browsing.
func (k boardKeyMap) boardHelp() []key.Binding {
	return []key.Binding{k.Left, k.Up, k.Toggle, k.Move[board.Backlog], k.New, k.Quit}
}

// inputHelp is shown in the status bar while typing a title.
func (k boardKeyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Cancel}
}
