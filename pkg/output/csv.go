package output

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/triagekit/logtriage/pkg/record"
)

// resultsHeader is the column contract of the per-record detail table.
var resultsHeader = []string{
	"LineId", "GroundTruth", "PredictedLabel", "Confidence", "Severity",
	"Stage1TimeMs", "Stage2TimeMs", "TotalTimeMs", "KeywordsCount",
}

// WriteResultsCSV writes the row-per-record detail table. Timings are
// rendered with three decimals.
func WriteResultsCSV(store *record.Store, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(resultsHeader); err != nil {
		return err
	}

	for _, rec := range store.Records() {
		row := []string{
			strconv.Itoa(rec.LineID),
			rec.Label,
			rec.Predicted,
			string(rec.Confidence),
			string(rec.Severity),
			formatMs(rec.Stage1Ms),
			formatMs(rec.Stage2Ms),
			formatMs(rec.TotalMs),
			strconv.Itoa(len(rec.Keywords)),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatMs(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
