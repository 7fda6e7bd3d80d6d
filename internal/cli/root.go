// Package cli provides the command-line interface for logtriage.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/triagekit/logtriage/internal/cli/commands"
)

// Execute runs the root command and returns the process exit code.
func Execute() int {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "logtriage",
		Short: "Classify log records with keyword rules, in parallel",
		Long: `logtriage is a throughput-oriented batch classifier for structured log records.

It assigns each record an issue category, a confidence tier, and a severity
tier using fixed keyword-matching rules, fans the per-record work out across
a worker pool, and aggregates timing, accuracy, and resource metrics into a
performance report.

Records are processed independently: no learning, no cross-record context,
and no ordering guarantee between records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
