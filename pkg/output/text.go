package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/triagekit/logtriage/pkg/record"
	"github.com/triagekit/logtriage/pkg/stats"
)

const separatorWidth = 80

// WriteTextSummary renders the human-readable run summary: throughput, stage
// breakdown, accuracy, keyword statistics, memory usage, and the label
// distributions.
func WriteTextSummary(rep stats.Report, store *record.Store, w io.Writer) error {
	sep := strings.Repeat("=", separatorWidth)

	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, "PERFORMANCE ANALYSIS SUMMARY")
	fmt.Fprintln(w, sep)

	fmt.Fprintln(w, "\n--- Overall Throughput ---")
	fmt.Fprintf(w, "Total logs: %d\n", rep.TotalLogs)
	fmt.Fprintf(w, "Workers: %d\n", rep.Workers)
	fmt.Fprintf(w, "Total time: %.3f seconds\n", rep.TotalTimeSec)
	fmt.Fprintf(w, "Throughput: %.2f logs/sec\n", rep.ThroughputPerSec)
	fmt.Fprintf(w, "Avg time per log: %.3f ms\n", rep.AvgTimePerLogMs)

	fmt.Fprintln(w, "\n--- Stage Breakdown ---")
	fmt.Fprintf(w, "Stage 1 (rule analysis): %.3fs (%.1f%%)\n", rep.Stage1TimeSec, rep.Stage1Pct)
	fmt.Fprintf(w, "Stage 2 (report generation): %.3fs (%.1f%%)\n", rep.Stage2TimeSec, rep.Stage2Pct)

	fmt.Fprintln(w, "\n--- Prediction Accuracy ---")
	fmt.Fprintf(w, "Correct: %d/%d\n", rep.CorrectPredictions, rep.TotalLogs)
	fmt.Fprintf(w, "Accuracy: %.1f%%\n", rep.AccuracyPct)

	fmt.Fprintln(w, "\n--- Keywords Statistics ---")
	fmt.Fprintf(w, "Avg keywords per log: %.1f\n", rep.AvgKeywordsCount)
	fmt.Fprintf(w, "Avg keyword chars per log: %.1f\n", rep.AvgKeywordsChars)

	fmt.Fprintln(w, "\n--- Memory Usage ---")
	fmt.Fprintf(w, "Peak memory: %d MB\n", rep.PeakMemoryMB)

	fmt.Fprintln(w, "\n--- Label Distribution ---")
	fmt.Fprintln(w, "\nGround Truth:")
	writeDistribution(store.GroundTruthDistribution(), w)
	fmt.Fprintln(w, "\nPredicted:")
	writeDistribution(store.PredictedDistribution(), w)

	fmt.Fprintln(w, sep)
	return nil
}

func writeDistribution(dist map[string]int, w io.Writer) {
	labels := make([]string, 0, len(dist))
	for label := range dist {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		name := label
		if name == record.NormalLabel {
			name = "Normal (-)"
		}
		fmt.Fprintf(w, "  %s: %d\n", name, dist[label])
	}
}
