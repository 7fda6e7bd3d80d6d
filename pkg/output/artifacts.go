// Package output writes the run artifacts: the performance summary JSON, the
// per-record results CSV, and the console text summary.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/triagekit/logtriage/pkg/record"
	"github.com/triagekit/logtriage/pkg/stats"
)

// Artifact file names within the output directory.
const (
	SummaryFileName = "performance.json"
	ResultsFileName = "results.csv"
)

// WriteArtifacts writes the performance summary and the per-record results
// into dir, creating it if needed.
func WriteArtifacts(dir string, rep stats.Report, store *record.Store) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	summaryPath := filepath.Join(dir, SummaryFileName)
	if err := writeFile(summaryPath, func(f *os.File) error {
		return WriteSummaryJSON(rep, f)
	}); err != nil {
		return fmt.Errorf("writing %s: %w", summaryPath, err)
	}
	log.Info().Str("path", summaryPath).Msg("performance summary saved")

	resultsPath := filepath.Join(dir, ResultsFileName)
	if err := writeFile(resultsPath, func(f *os.File) error {
		return WriteResultsCSV(store, f)
	}); err != nil {
		return fmt.Errorf("writing %s: %w", resultsPath, err)
	}
	log.Info().Str("path", resultsPath).Msg("detailed results saved")

	return nil
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path) // #nosec G304 -- user-provided output dir is expected
	if err != nil {
		return err
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
