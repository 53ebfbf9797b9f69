// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "octoscout",
	Short: "A CLI tool to find and rank repository contributors.",
	Long: `octoscout queries the GitHub API to identify and rank contributors to
one or more repositories for recruiting outreach. It aggregates per-user
contribution metrics across commits, pull requests, and issues, then writes
a de-duplicated, filterable, ranked tabular export.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
