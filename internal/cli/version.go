package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pablasso/kanban/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// Version output must not depend on a readable config.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "kanban %s\n", version.Version)
		fmt.Fprintf(out, "commit: %s\n", version.CommitSHA)
		fmt.Fprintf(out, "built:  %s\n", version.BuildDate)
	},
}
