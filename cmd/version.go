package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/cyberterm/internal/content"
)

// version is set via -ldflags at build time.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "cyberterm", version)
		if c, err := content.Default(); err == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "catalog", c.Version())
		}
	},
}
