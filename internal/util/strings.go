package util

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TitleCase upper-cases the first letter of every word and lower-cases the rest.
// Runs of whitespace are preserved. A Caser is stateful, so each call gets its own.
func TitleCase(s string) string {
	return cases.Title(language.Und).String(s)
}

// Truncate shortens s to at most width terminal cells, ending with an
// ellipsis when cut. Wide runes count as two cells and are never split.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return strings.TrimRight(ansi.Truncate(s, width-1, ""), " ") + "…"
}
