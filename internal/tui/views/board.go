package views

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/pablasso/kanban/internal/board"
	"github.com/pablasso/kanban/internal/tui/components"
	"github.com/pablasso/kanban/internal/tui/msgs"
	"github.com/pablasso/kanban/internal/tui/styles"
	"github.com/pablasso/kanban/internal/util"
)

const hintDuration = 3 * time.Second

// storeFeed bridges the store's synchronous observer into Bubble Tea.
// It holds at most one snapshot: a newer publish replaces an unread one.
type storeFeed struct {
	updates chan []board.Task
}

func newStoreFeed() *storeFeed {
	return &storeFeed{updates: make(chan []board.Task, 1)}
}

// push is the store observer. It runs on the Update goroutine, the only writer.
func (f *storeFeed) push(tasks []board.Task) {
	select {
	case <-f.updates:
	default:
	}
	f.updates <- tasks
}

// wait blocks until the next snapshot is available.
func (f *storeFeed) wait() tea.Cmd {
	return func() tea.Msg {
		return msgs.BoardUpdatedMsg{Tasks: <-f.updates}
	}
}

// BoardConfig holds initialization parameters for the board view.
type BoardConfig struct {
	ColumnWidth int
	Logger      logrus.FieldLogger
}

// BoardModel is the four-column kanban view.
type BoardModel struct {
	store *board.Store
	feed  *storeFeed
	sub   *board.Subscription

	// Latest snapshot received from the store
	tasks []board.Task

	// Focused column and the cursor row inside each column
	column board.List
	rows   [4]int

	creating bool
	input    textinput.Model

	hint    string
	hintSeq int

	keys        boardKeyMap
	columnWidth int
	width       int
	height      int
	log         logrus.FieldLogger
}

// NewBoardModel subscribes to the store and returns a board view for it.
func NewBoardModel(store *board.Store, cfg BoardConfig) BoardModel {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.CharLimit = 256
	ti.Prompt = "New task: "

	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}

	columnWidth := cfg.ColumnWidth
	if columnWidth <= 0 {
		columnWidth = 28
	}

	m := BoardModel{
		store:       store,
		feed:        newStoreFeed(),
		input:       ti,
		keys:        defaultBoardKeyMap(),
		columnWidth: columnWidth,
		log:         log,
	}
	// The store replays its current state on subscribe, so the feed
	// already holds the first snapshot when this returns.
	m.sub = store.Subscribe(m.feed.push)
	return m
}

// Init implements tea.Model.
func (m BoardModel) Init() tea.Cmd {
	return m.feed.wait()
}

// Update implements tea.Model.
func (m BoardModel) Update(msg tea.Msg) (BoardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case msgs.BoardUpdatedMsg:
		m.tasks = msg.Tasks
		m.clampRows()
		return m, m.feed.wait()

	case msgs.ClearHintMsg:
		if msg.Seq == m.hintSeq {
			m.hint = ""
		}
		return m, nil

	case tea.KeyMsg:
		if m.creating {
			return m.updateInput(msg)
		}
		return m.updateBoard(msg)
	}

	if m.creating {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m BoardModel) updateBoard(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Left):
		if m.column > board.Backlog {
			m.column--
		}
	case key.Matches(msg, m.keys.Right):
		if m.column < board.Done {
			m.column++
		}
	case key.Matches(msg, m.keys.Up):
		if m.rows[m.column] > 0 {
			m.rows[m.column]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.rows[m.column] < len(board.Column(m.tasks, m.column))-1 {
			m.rows[m.column]++
		}
	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.FocusedTask(); ok {
			m.store.ToggleSelection(task.ID)
		}
	case key.Matches(msg, m.keys.New):
		m.creating = true
		m.input.Reset()
		return m, m.input.Focus()
	default:
		for _, target := range board.Lists() {
			if key.Matches(msg, m.keys.Move[target]) {
				return m.moveSelected(target)
			}
		}
	}
	return m, nil
}

func (m BoardModel) updateInput(msg tea.KeyMsg) (BoardModel, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		m.stopInput()
		return m, nil
	case key.Matches(msg, m.keys.Submit):
		backlogLen := len(board.Column(m.tasks, board.Backlog))
		task, ok := m.store.CreateTask(m.input.Value())
		if !ok {
			return m.showHint("Title cannot be empty")
		}
		m.log.WithField("task_id", task.ID).Info("task created from board")
		m.stopInput()
		m.column = board.Backlog
		m.rows[board.Backlog] = backlogLen
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BoardModel) moveSelected(target board.List) (BoardModel, tea.Cmd) {
	moved := m.store.MoveSelected(target)
	if moved == 0 {
		return m.showHint("Nothing selected")
	}
	noun := "tasks"
	if moved == 1 {
		noun = "task"
	}
	return m.showHint(fmt.Sprintf("Moved %d %s to %s", moved, noun, target))
}

func (m *BoardModel) stopInput() {
	m.creating = false
	m.input.Blur()
	m.input.Reset()
}

func (m BoardModel) showHint(text string) (BoardModel, tea.Cmd) {
	m.hintSeq++
	m.hint = text
	seq := m.hintSeq
	return m, tea.Tick(hintDuration, func(time.Time) tea.Msg {
		return msgs.ClearHintMsg{Seq: seq}
	})
}

// clampRows keeps every cursor inside its column after the snapshot changes.
func (m *BoardModel) clampRows() {
	for _, l := range board.Lists() {
		n := len(board.Column(m.tasks, l))
		if m.rows[l] >= n {
			m.rows[l] = n - 1
		}
		if m.rows[l] < 0 {
			m.rows[l] = 0
		}
	}
}

// View implements tea.Model.
func (m BoardModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	var b strings.Builder

	title := styles.TitleStyle.Render("K A N B A N")
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, title))
	b.WriteString("\n")

	tallest := 0
	for _, l := range board.Lists() {
		if n := len(board.Column(m.tasks, l)); n > tallest {
			tallest = n
		}
	}

	columns := make([]string, 0, len(board.Lists()))
	for _, l := range board.Lists() {
		columns = append(columns, m.renderColumn(l, tallest))
	}
	grid := lipgloss.JoinHorizontal(lipgloss.Top, columns...)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, grid))
	b.WriteString("\n\n")

	var footer []string
	if m.creating {
		footer = append(footer, m.input.View())
	}
	if m.hint != "" {
		footer = append(footer, styles.SubtleStyle.Render(m.hint))
	}
	if n := board.SelectedCount(m.tasks); n > 0 {
		footer = append(footer, styles.SelectedCardStyle.Render(fmt.Sprintf("%d selected", n)))
	}
	footerBlock := strings.Join(footer, "\n")
	b.WriteString(footerBlock)

	// Status bar takes 1 line at bottom
	used := lipgloss.Height(b.String())
	if bottomPadding := m.height - used - 1; bottomPadding > 0 {
		b.WriteString(strings.Repeat("\n", bottomPadding))
	}
	b.WriteString("\n")

	help := m.keys.boardHelp()
	if m.creating {
		help = m.keys.inputHelp()
	}
	b.WriteString(components.NewStatusBar().Render(m.width, components.HelpItems(help...)))

	return b.String()
}

func (m BoardModel) renderColumn(l board.List, height int) string {
	tasks := board.Column(m.tasks, l)
	cards := make([]components.Card, 0, len(tasks))
	for i, t := range tasks {
		cards = append(cards, components.Card{
			Title:    util.TitleCase(t.Title),
			Selected: t.Selected,
			Focused:  l == m.column && i == m.rows[l] && !m.creating,
		})
	}

	return components.Column{
		Title:   l.String(),
		Cards:   cards,
		Focused: l == m.column,
		Width:   m.columnWidth,
		Height:  height,
	}.Render()
}

// FocusedTask returns the task under the cursor, if the focused column has any.
func (m BoardModel) FocusedTask() (board.Task, bool) {
	tasks := board.Column(m.tasks, m.column)
	row := m.rows[m.column]
	if row < 0 || row >= len(tasks) {
		return board.Task{}, false
	}
	return tasks[row], true
}

// Close cancels the store subscription. It is safe to call more than once.
func (m BoardModel) Close() {
	m.sub.Unsubscribe()
}

// SetSize updates the model dimensions.
func (m *BoardModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Tasks returns the latest snapshot the view has rendered from.
func (m BoardModel) Tasks() []board.Task {
	return m.tasks
}

// FocusedColumn returns the list that holds the cursor.
func (m BoardModel) FocusedColumn() board.List {
	return m.column
}

// Creating reports whether the title input is open.
func (m BoardModel) Creating() bool {
	return m.creating
}

// Hint returns the transient message shown under the board.
func (m BoardModel) Hint() string {
	return m.hint
}
