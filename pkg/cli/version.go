package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionInfo = "dev"

// SetVersionInfo records the build version injected by the linker.
func SetVersionInfo(version string) {
	versionInfo = version
}

// GetVersion returns the recorded build version.
func GetVersion() string {
	return versionInfo
}

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the harmony-verifier version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "harmony-verifier version %s\n", GetVersion())
		},
	}
}
