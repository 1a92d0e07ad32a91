package tui

import "github.com/sirupsen/logrus"

const defaultColumnWidth = 28

// Options configures TUI startup behavior.
type Options struct {
	AltScreen   bool
	ColumnWidth int
	Logger      logrus.FieldLogger
}

func (o Options) withDefaults() Options {
	if o.ColumnWidth <= 0 {
		o.ColumnWidth = defaultColumnWidth
	}
	return o
}
