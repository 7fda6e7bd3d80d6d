// Package parser provides CSV ingestion of structured log records.
package parser

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/triagekit/logtriage/pkg/record"
)

// Input column layout. NodeRepeat, Type, and EventId are read but not
// retained.
const (
	colLineID = iota
	colLabel
	colTimestamp
	colDate
	colNode
	colTime
	colNodeRepeat
	colType
	colComponent
	colLevel
	colContent
	colEventID
	colEventTemplate
	numColumns
)

// LoadCSV reads log records from the file at path. The first row is treated
// as a header and skipped.
func LoadCSV(path string) (*record.Store, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input path is expected
	if err != nil {
		return nil, fmt.Errorf("opening input file: %w", err)
	}
	defer f.Close()

	store, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return store, nil
}

// Read parses CSV log records from r. Malformed rows are dropped with a
// warning and never reach the pipeline; only unreadable input is an error.
func Read(r io.Reader) (*record.Store, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // row width is checked per record
	cr.LazyQuotes = true

	// Header row.
	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return record.NewStore(nil), nil
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}

	var records []*record.LogRecord
	rowNum := 1
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			log.Warn().Int("row", rowNum).Err(err).Msg("skipping malformed row")
			continue
		}

		rec, err := parseRow(row)
		if err != nil {
			log.Warn().Int("row", rowNum).Err(err).Msg("skipping malformed row")
			continue
		}
		records = append(records, rec)
	}

	return record.NewStore(records), nil
}

func parseRow(row []string) (*record.LogRecord, error) {
	if len(row) < numColumns {
		return nil, fmt.Errorf("expected %d columns, got %d", numColumns, len(row))
	}

	lineID, err := strconv.Atoi(strings.TrimSpace(row[colLineID]))
	if err != nil {
		return nil, fmt.Errorf("parsing LineId: %w", err)
	}
	if lineID < 0 {
		return nil, fmt.Errorf("negative LineId %d", lineID)
	}

	// An empty ground truth means the record is normal.
	label := row[colLabel]
	if label == "" {
		label = record.NormalLabel
	}

	return &record.LogRecord{
		LineID:        lineID,
		Label:         label,
		Timestamp:     row[colTimestamp],
		Date:          row[colDate],
		Node:          row[colNode],
		Time:          row[colTime],
		Component:     row[colComponent],
		Level:         row[colLevel],
		Content:       row[colContent],
		EventTemplate: row[colEventTemplate],
	}, nil
}
