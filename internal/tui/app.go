package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/pablasso/kanban/internal/board"
	"github.com/pablasso/kanban/internal/tui/styles"
	"github.com/pablasso/kanban/internal/tui/views"
)

// MinTerminalHeight is the smallest height the board renders in.
// The minimum width depends on the configured column width.
const MinTerminalHeight = 12

// Model is the main Bubble Tea model. It owns the board view and guards
// against terminals too small to draw it.
type Model struct {
	board       views.BoardModel
	columnWidth int
	width       int
	height      int
}

// Run starts the TUI application on store and blocks until the user quits.
func Run(store *board.Store, opts Options) error {
	programOpts := []tea.ProgramOption{}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	m := initialModel(store, opts)
	defer m.board.Close()

	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	return err
}

func initialModel(store *board.Store, opts Options) Model {
	opts = opts.withDefaults()
	return Model{
		board: views.NewBoardModel(store, views.BoardConfig{
			ColumnWidth: opts.ColumnWidth,
			Logger:      opts.Logger,
		}),
		columnWidth: opts.ColumnWidth,
	}
}

// MinTerminalWidth returns the width needed to show all four columns.
func (m Model) MinTerminalWidth() int {
	return len(board.Lists()) * m.columnWidth
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.board.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width > 0 && m.height > 0 && (m.width < m.MinTerminalWidth() || m.height < MinTerminalHeight) {
		return m.renderTerminalTooSmall()
	}
	return m.board.View()
}

func (m Model) renderTerminalTooSmall() string {
	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("Terminal too small"))
	b.WriteString("\n\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("Minimum: %dx%d", m.MinTerminalWidth(), MinTerminalHeight)))
	b.WriteString("\n")
	b.WriteString(styles.SubtleStyle.Render(fmt.Sprintf("Current: %dx%d", m.width, m.height)))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
