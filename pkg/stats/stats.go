// Package stats reduces a finished record store into a performance report.
package stats

import (
	"time"

	"github.com/triagekit/logtriage/pkg/record"
)

// Report is the aggregate timing, accuracy, and resource summary for one
// run. It is computed once, after dispatch completes, and never mutated
// afterward.
type Report struct {
	TotalLogs          int
	Workers            int
	TotalTimeSec       float64
	Stage1TimeSec      float64
	Stage2TimeSec      float64
	ThroughputPerSec   float64
	AvgTimePerLogMs    float64
	Stage1Pct          float64
	Stage2Pct          float64
	CorrectPredictions int
	AccuracyPct        float64
	AvgKeywordsCount   float64
	AvgKeywordsChars   float64
	PeakMemoryMB       int64
}

// Aggregate performs a single-threaded reduction over the store. It must run
// strictly after the dispatcher's completion barrier. The caller guarantees
// a non-empty store and a positive totalWall; the run command validates both
// before invoking the pipeline.
func Aggregate(store *record.Store, totalWall time.Duration, workers int) Report {
	n := store.Len()
	rep := Report{
		TotalLogs:    n,
		Workers:      workers,
		TotalTimeSec: totalWall.Seconds(),
	}

	var sumStage1, sumStage2 float64
	var totalKeywords, totalKeywordChars, correct int
	for _, rec := range store.Records() {
		sumStage1 += rec.Stage1Ms
		sumStage2 += rec.Stage2Ms

		totalKeywords += len(rec.Keywords)
		for _, kw := range rec.Keywords {
			totalKeywordChars += len(kw)
		}

		if rec.Predicted == rec.Label {
			correct++
		}
	}

	rep.Stage1TimeSec = sumStage1 / 1000
	rep.Stage2TimeSec = sumStage2 / 1000
	rep.ThroughputPerSec = float64(n) / rep.TotalTimeSec
	rep.AvgTimePerLogMs = (sumStage1 + sumStage2) / float64(n)

	if total := rep.Stage1TimeSec + rep.Stage2TimeSec; total > 0 {
		rep.Stage1Pct = rep.Stage1TimeSec / total * 100
		rep.Stage2Pct = rep.Stage2TimeSec / total * 100
	}

	rep.CorrectPredictions = correct
	rep.AccuracyPct = 100 * float64(correct) / float64(n)
	rep.AvgKeywordsCount = float64(totalKeywords) / float64(n)
	rep.AvgKeywordsChars = float64(totalKeywordChars) / float64(n)
	rep.PeakMemoryMB = PeakRSSMB()

	return rep
}
