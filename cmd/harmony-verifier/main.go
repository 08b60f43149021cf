// harmony-verifier checks that the harmony repository carries a
// complete multi-branch history report on its report branch. The run
// takes no arguments; credentials come from the environment or a
// .mcp_env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harmonyeval/harmony-verifier/pkg/cli"
	"github.com/harmonyeval/harmony-verifier/pkg/console"
)

// version is injected at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "harmony-verifier",
	Short: "Verify the multi-branch history report on the harmony repository",
	Long: `harmony-verifier runs a one-shot compliance check against the harmony
repository: it verifies that the history-report-2025 branch exists, fetches
the three report artifacts (BRANCH_COMMITS.json, CROSS_BRANCH_ANALYSIS.md,
MERGE_TIMELINE.txt) and validates their content, then reports the policy
constraints that applied to the run.

Credentials are read from MCP_GITHUB_TOKEN and GITHUB_EVAL_ORG, optionally
seeded from a .mcp_env file in the working directory (or under the
directory named by GITHUB_REPO_ROOT). The exit code is 0 only when every
step passes.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.RunVerify(cli.VerifyConfig{})
	},
}

func init() {
	cli.SetVersionInfo(version)
	rootCmd.AddCommand(cli.NewVersionCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, console.FormatErrorMessage(err.Error()))
		os.Exit(1)
	}
}
