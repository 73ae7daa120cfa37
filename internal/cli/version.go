package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geocine/pandoc-jekyll/internal/version"
)

// NewCmdVersion creates the version command
func NewCmdVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pandoc-jekyll version %s (commit: %s, built: %s)\n",
				version.Version, version.Commit, version.Date)
		},
	}
}
