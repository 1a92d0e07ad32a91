// Package styles defines shared lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	primaryColor   = lipgloss.Color("#5FAFAF") // Teal accent
	secondaryColor = lipgloss.Color("#666666") // Gray for secondary text
	selectedColor  = lipgloss.Color("#D7AF5F") // Amber for selected cards
	errorColor     = lipgloss.Color("#AF5F5F") // Muted terracotta for errors

	// TitleStyle for headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// SubtleStyle for hints/help text
	SubtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// StatusBarStyle for bottom status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// ColumnStyle for an unfocused list column
	ColumnStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(secondaryColor).
			Padding(0, 1)

	// FocusedColumnStyle for the column holding the cursor
	FocusedColumnStyle = ColumnStyle.
				BorderForeground(primaryColor)

	// ColumnHeaderStyle for the list name above the cards
	ColumnHeaderStyle = lipgloss.NewStyle().
				Bold(true)

	// CursorStyle for the focused card
	CursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// SelectedCardStyle for cards marked for the next move
	SelectedCardStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(selectedColor)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor)
)
