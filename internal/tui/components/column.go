package components

import (
	"fmt"
	"strings"

	"github.com/pablasso/kanban/internal/tui/styles"
	"github.com/pablasso/kanban/internal/util"
)

// Card is one task line inside a column.
type Card struct {
	Title    string
	Selected bool
	Focused  bool
}

// Column renders a bordered list column with a header and its cards.
type Column struct {
	Title   string
	Cards   []Card
	Focused bool
	Width   int // outer width including border
	Height  int // minimum number of card rows
}

const (
	cardPrefixWidth = 6 // "› [x] "
	columnChrome    = 4 // border + horizontal padding
)

// Render returns the column block.
func (c Column) Render() string {
	inner := c.Width - columnChrome
	if inner < cardPrefixWidth+1 {
		inner = cardPrefixWidth + 1
	}

	lines := []string{
		styles.ColumnHeaderStyle.Render(util.Truncate(fmt.Sprintf("%s (%d)", c.Title, len(c.Cards)), inner)),
		"",
	}

	if len(c.Cards) == 0 {
		lines = append(lines, styles.SubtleStyle.Render("empty"))
	}
	for _, card := range c.Cards {
		lines = append(lines, renderCard(card, inner-cardPrefixWidth))
	}
	for len(lines) < c.Height+2 {
		lines = append(lines, "")
	}

	style := styles.ColumnStyle
	if c.Focused {
		style = styles.FocusedColumnStyle
	}
	// lipgloss widths exclude the border
	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func renderCard(card Card, titleWidth int) string {
	cursor := " "
	if card.Focused {
		cursor = "›"
	}
	marker := "[ ]"
	if card.Selected {
		marker = "[x]"
	}

	line := fmt.Sprintf("%s %s %s", cursor, marker, util.Truncate(card.Title, titleWidth))
	switch {
	case card.Selected:
		return styles.SelectedCardStyle.Render(line)
	case card.Focused:
		return styles.CursorStyle.Render(line)
	default:
		return line
	}
}
