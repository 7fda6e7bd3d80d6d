package output

import (
	"encoding/json"
	"io"
	"math"

	"github.com/triagekit/logtriage/pkg/stats"
)

// summaryDoc is the on-disk layout of the performance summary artifact.
type summaryDoc struct {
	Metadata           summaryMetadata   `json:"metadata"`
	Throughput         summaryThroughput `json:"throughput"`
	StageBreakdown     summaryStages     `json:"stage_breakdown"`
	Accuracy           summaryAccuracy   `json:"accuracy"`
	KeywordsStatistics summaryKeywords   `json:"keywords_statistics"`
	MemoryUsage        summaryMemory     `json:"memory_usage"`
}

type summaryMetadata struct {
	TotalLogsProcessed int     `json:"total_logs_processed"`
	NumWorkers         int     `json:"num_workers"`
	TotalTimeSeconds   float64 `json:"total_time_seconds"`
}

type summaryThroughput struct {
	LogsPerSecond   float64 `json:"logs_per_second"`
	AvgTimePerLogMs float64 `json:"avg_time_per_log_ms"`
}

type summaryStages struct {
	Stage1TimeSec    float64 `json:"stage1_time_sec"`
	Stage2TimeSec    float64 `json:"stage2_time_sec"`
	Stage1Percentage float64 `json:"stage1_percentage"`
	Stage2Percentage float64 `json:"stage2_percentage"`
}

type summaryAccuracy struct {
	Correct            int     `json:"correct"`
	Total              int     `json:"total"`
	AccuracyPercentage float64 `json:"accuracy_percentage"`
}

type summaryKeywords struct {
	AvgKeywordsCount float64 `json:"avg_keywords_count"`
	AvgKeywordsChars float64 `json:"avg_keywords_chars"`
}

type summaryMemory struct {
	PeakMemoryMB int64 `json:"peak_memory_mb"`
}

// WriteSummaryJSON writes the performance summary artifact. Values are
// rounded before encoding so the artifact carries the documented precision:
// seconds to six decimals, percentages and keyword averages to two,
// throughput figures to three.
func WriteSummaryJSON(rep stats.Report, w io.Writer) error {
	doc := summaryDoc{
		Metadata: summaryMetadata{
			TotalLogsProcessed: rep.TotalLogs,
			NumWorkers:         rep.Workers,
			TotalTimeSeconds:   round(rep.TotalTimeSec, 6),
		},
		Throughput: summaryThroughput{
			LogsPerSecond:   round(rep.ThroughputPerSec, 3),
			AvgTimePerLogMs: round(rep.AvgTimePerLogMs, 3),
		},
		StageBreakdown: summaryStages{
			Stage1TimeSec:    round(rep.Stage1TimeSec, 6),
			Stage2TimeSec:    round(rep.Stage2TimeSec, 6),
			Stage1Percentage: round(rep.Stage1Pct, 2),
			Stage2Percentage: round(rep.Stage2Pct, 2),
		},
		Accuracy: summaryAccuracy{
			Correct:            rep.CorrectPredictions,
			Total:              rep.TotalLogs,
			AccuracyPercentage: round(rep.AccuracyPct, 2),
		},
		KeywordsStatistics: summaryKeywords{
			AvgKeywordsCount: round(rep.AvgKeywordsCount, 2),
			AvgKeywordsChars: round(rep.AvgKeywordsChars, 2),
		},
		MemoryUsage: summaryMemory{
			PeakMemoryMB: rep.PeakMemoryMB,
		},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

func round(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(x*scale) / scale
}
