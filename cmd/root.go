// Package cmd defines and implements the CLI commands for the rewindos
// executable.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rewindos",
		Short: "Counts US Christmas television episodes by year",
		Long: `rewindos scrapes Wikipedia's list of United States Christmas
television episodes, classifies each dated list entry by its section
heading, filters out animation and made-for-TV specials, and writes
CSV tables plus a bar chart of episode counts per year.`,

		// Execute reports fatal errors itself; without these cobra would
		// print the error and usage text a second time.
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (optional; defaults apply without one)")
	cmd.AddCommand(newScrapeCmd())

	return cmd
}

// Execute is the main entry point.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
