// Package cmd implements the standups-report command line on top of Cobra.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "standups-report",
	Short: "Turns standups status updates into a weekly team report.",
	Long: `standups-report collects the status updates of a standups project for a
day or a date range, groups them per user, links the referenced bugs and prints
the result as plain text or mediawiki markup.

Services are configured through the environment: STANDUPS_URL, STANDUPS_PROJECT,
ISSUE_TRACKER (bugzilla or github), BUGZILLA_URL, BUGZILLA_API_KEY, GITHUB_TOKEN,
GITHUB_REPO, HTTP_TIMEOUT, LOOKUP_CONCURRENCY and LOOKUP_RATE.`,
	SilenceUsage: true,
}

// Execute runs the command selected on the command line and exits with
// status 1 when it fails.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Logs go to stderr only with --verbose; the report itself always goes to stdout.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log gateway and aggregation progress to stderr")
}
