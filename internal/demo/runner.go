// Package demo plays scripted scenarios against a board store and prints
// every published snapshot as a table.
package demo

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pablasso/kanban/internal/board"
	"github.com/pablasso/kanban/internal/util"
)

// Runner drives a scenario into a store and writes the board after each publish.
type Runner struct {
	config Config
	store  *board.Store
	out    io.Writer
}

// NewRunner creates a Runner for store that writes to out.
func NewRunner(config Config, store *board.Store, out io.Writer) *Runner {
	return &Runner{
		config: config,
		store:  store,
		out:    out,
	}
}

// Run plays the configured scenario. Context cancellation stops playback
// between steps.
func (r *Runner) Run(ctx context.Context) error {
	steps, err := Script(r.config.Scenario)
	if err != nil {
		return err
	}

	var (
		heading   = "initial board"
		published int
		writeErr  error
	)
	sub := r.store.Subscribe(func(tasks []board.Task) {
		published++
		if writeErr == nil {
			writeErr = WriteBoard(r.out, heading, tasks)
		}
	})
	defer sub.Unsubscribe()
	if writeErr != nil {
		return writeErr
	}
	fmt.Fprintln(r.out)

	for i, step := range steps {
		if err := r.wait(ctx); err != nil {
			return err
		}

		heading = fmt.Sprintf("step %d: %s", i+1, step.Label)
		before := published
		note := step.Apply(r.store)

		if writeErr != nil {
			return writeErr
		}
		if published == before {
			if _, err := fmt.Fprintf(r.out, "== %s\n(no publish)\n", heading); err != nil {
				return err
			}
		}
		if note != "" {
			if _, err := fmt.Fprintf(r.out, "-> %s\n", note); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(r.out); err != nil {
			return err
		}
	}

	return writeErr
}

// wait pauses between steps, returning early when ctx is done.
func (r *Runner) wait(ctx context.Context) error {
	if r.config.StepDelay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.config.StepDelay):
		return nil
	}
}

// WriteBoard prints tasks grouped by list, one row per task, with empty
// lists shown as a dash.
func WriteBoard(out io.Writer, heading string, tasks []board.Task) error {
	if _, err := fmt.Fprintf(out, "== %s\n", heading); err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "LIST\tID\tTITLE\tSELECTED")

	for _, l := range board.Lists() {
		column := board.Column(tasks, l)
		if len(column) == 0 {
			fmt.Fprintf(w, "%s\t-\t\t\n", l)
			continue
		}
		for _, task := range column {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				l,
				task.ID,
				util.TitleCase(task.Title),
				selectionMarker(task.Selected),
			)
		}
	}

	return w.Flush()
}

func selectionMarker(selected bool) string {
	if selected {
		return "[x]"
	}
	return "[ ]"
}
