package main

import (
	"os"

	"github.com/pablasso/kanban/internal/cli"
)

func main() {
	// cobra prints the error; the board runs when no subcommand is given
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
