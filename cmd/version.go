package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/termgrid/pkg/settings"
)

// versionString builds the text shown by --version and the version command.
func versionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s (commit %s, built %s, %s)", v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", settings.CliBinaryName, versionString())
		},
	}
}
