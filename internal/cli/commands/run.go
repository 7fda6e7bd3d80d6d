package commands

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/triagekit/logtriage/pkg/dispatch"
	"github.com/triagekit/logtriage/pkg/engine"
	"github.com/triagekit/logtriage/pkg/output"
	"github.com/triagekit/logtriage/pkg/parser"
	"github.com/triagekit/logtriage/pkg/rules"
	"github.com/triagekit/logtriage/pkg/stats"
)

// RunOptions holds command-line options for the run command.
type RunOptions struct {
	OutputDir string
	Workers   int
	RulesFile string
}

// NewRunCommand creates the run command.
func NewRunCommand() *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run <input-csv>",
		Short: "Classify a log dataset and write the performance report",
		Long: `Classify every record of a CSV log dataset with the keyword rule table,
processing records in parallel, and write two artifacts into the output
directory: performance.json (run summary) and results.csv (per-record
detail).

Exit codes:
  0 - Run completed
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(args[0], opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.OutputDir, "output-dir", "o", "output", "Directory for report artifacts")
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", dispatch.DefaultWorkers, "Worker count for the parallel region")
	cmd.Flags().StringVar(&opts.RulesFile, "rules", "", "YAML rule table replacing the built-in rules")

	return cmd
}

func runRun(inputPath string, opts *RunOptions) error {
	if opts.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", opts.Workers)
	}

	table := rules.Default()
	if opts.RulesFile != "" {
		var err error
		table, err = rules.Load(opts.RulesFile)
		if err != nil {
			return fmt.Errorf("loading rules: %w", err)
		}
	}

	log.Info().Str("input", inputPath).Msg("loading dataset")
	store, err := parser.LoadCSV(inputPath)
	if err != nil {
		return err
	}
	if store.Len() == 0 {
		return fmt.Errorf("no usable records in %s", inputPath)
	}
	log.Info().Int("records", store.Len()).Msg("dataset loaded")

	ruleEngine := engine.NewRuleEngine(table)
	reportStage := engine.NewReportStage()

	log.Info().Int("workers", opts.Workers).Msg("processing records")
	elapsed, err := dispatch.New(opts.Workers).Run(store, ruleEngine.Analyze, reportStage.Generate)
	if err != nil {
		return err
	}
	if elapsed <= 0 {
		return fmt.Errorf("measured wall time %s is not positive", elapsed)
	}
	log.Info().Dur("elapsed", elapsed).Msg("processing completed")

	report := stats.Aggregate(store, elapsed, opts.Workers)

	if err := output.WriteTextSummary(report, store, os.Stdout); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	return output.WriteArtifacts(opts.OutputDir, report, store)
}
