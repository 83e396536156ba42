package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// BuildInfo is stamped into the binary at link time.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

func Execute(info BuildInfo) {
	cmd := NewRootCmd(info, os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd(info BuildInfo, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "romannumeral",
		Short:        "Integer to Roman numeral conversion daemon",
		SilenceUsage: true,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.AddCommand(
		serveCmd(),
		convertCmd(),
		versionCmd(info),
	)
	return cmd
}
