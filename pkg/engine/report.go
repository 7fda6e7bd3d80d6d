package engine

import (
	"time"

	"github.com/triagekit/logtriage/pkg/record"
)

// ReportStage is stage 2 of the pipeline: a seam for a future per-record
// text report. It performs no semantic work today, but it still measures and
// records its elapsed time because the aggregator reports the stage-2 share
// of total time as a first-class metric.
type ReportStage struct{}

// NewReportStage creates a report stage.
func NewReportStage() *ReportStage {
	return &ReportStage{}
}

// Generate runs stage 2 on the record, writing only Stage2Ms.
func (s *ReportStage) Generate(rec *record.LogRecord) {
	start := time.Now()

	rec.Stage2Ms = time.Since(start).Seconds() * 1000
}
