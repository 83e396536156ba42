package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func versionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "romannumeral version=%s commit=%s build_date=%s\n", info.Version, info.Commit, info.BuildDate)
		},
	}
}
