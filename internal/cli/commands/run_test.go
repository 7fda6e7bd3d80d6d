package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTestDataset writes a small CSV dataset and returns its path.
func writeTestDataset(t *testing.T, dir string, rows int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("LineId,Label,Timestamp,Date,Node,Time,NodeRepeat,Type,Component,Level,Content,EventId,EventTemplate\n")

	contents := []struct {
		label, level, content string
	}{
		{"Network", "WARN", "connection timeout to remote host refused"},
		{"Resource", "ERROR", "memory allocation failed exceeded limit"},
		{"-", "INFO", "system running normally"},
		{"Security", "FATAL", "authentication denied unauthorized access"},
	}
	for i := 0; i < rows; i++ {
		c := contents[i%len(contents)]
		fmt.Fprintf(&b, "%d,%s,ts,date,node,time,rep,type,KERNEL,%s,%s,E1,template\n",
			i+1, c.label, c.level, c.content)
	}

	path := filepath.Join(dir, "input.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o600); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}
	return path
}

type summaryFile struct {
	Metadata struct {
		TotalLogsProcessed int `json:"total_logs_processed"`
		NumWorkers         int `json:"num_workers"`
	} `json:"metadata"`
	Accuracy struct {
		Correct            int     `json:"correct"`
		AccuracyPercentage float64 `json:"accuracy_percentage"`
	} `json:"accuracy"`
}

func readSummary(t *testing.T, dir string) summaryFile {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(dir, "performance.json"))
	if err != nil {
		t.Fatalf("reading summary: %v", err)
	}
	var s summaryFile
	if err := json.Unmarshal(data, &s); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	return s
}

func TestRunRun(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDataset(t, dir, 120)
	outDir := filepath.Join(dir, "out")

	opts := &RunOptions{OutputDir: outDir, Workers: 4}
	if err := runRun(input, opts); err != nil {
		t.Fatalf("runRun() error = %v", err)
	}

	summary := readSummary(t, outDir)
	if summary.Metadata.TotalLogsProcessed != 120 {
		t.Errorf("total_logs_processed = %d, want 120", summary.Metadata.TotalLogsProcessed)
	}
	if summary.Metadata.NumWorkers != 4 {
		t.Errorf("num_workers = %d, want 4", summary.Metadata.NumWorkers)
	}

	if _, err := os.Stat(filepath.Join(outDir, "results.csv")); err != nil {
		t.Errorf("results artifact missing: %v", err)
	}
}

func TestRunRun_ConsistentAcrossWorkerCounts(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDataset(t, dir, 200)

	var summaries []summaryFile
	for _, workers := range []int{1, 2, 8} {
		outDir := filepath.Join(dir, fmt.Sprintf("out-%d", workers))
		if err := runRun(input, &RunOptions{OutputDir: outDir, Workers: workers}); err != nil {
			t.Fatalf("workers=%d: runRun() error = %v", workers, err)
		}
		summaries = append(summaries, readSummary(t, outDir))
	}

	for _, s := range summaries[1:] {
		if s.Metadata.TotalLogsProcessed != summaries[0].Metadata.TotalLogsProcessed {
			t.Errorf("record count varies with worker count: %d vs %d",
				s.Metadata.TotalLogsProcessed, summaries[0].Metadata.TotalLogsProcessed)
		}
		if s.Accuracy.Correct != summaries[0].Accuracy.Correct ||
			s.Accuracy.AccuracyPercentage != summaries[0].Accuracy.AccuracyPercentage {
			t.Errorf("accuracy varies with worker count: %+v vs %+v", s.Accuracy, summaries[0].Accuracy)
		}
	}
}

func TestRunRun_CustomRules(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDataset(t, dir, 8)

	rulesPath := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(rulesPath, []byte("Connectivity: [connection, timeout]\n"), 0o600); err != nil {
		t.Fatalf("writing rules: %v", err)
	}

	outDir := filepath.Join(dir, "out")
	opts := &RunOptions{OutputDir: outDir, Workers: 2, RulesFile: rulesPath}
	if err := runRun(input, opts); err != nil {
		t.Fatalf("runRun() error = %v", err)
	}
}

func TestRunRun_Errors(t *testing.T) {
	dir := t.TempDir()
	input := writeTestDataset(t, dir, 4)

	headerOnly := filepath.Join(dir, "empty.csv")
	if err := os.WriteFile(headerOnly, []byte("LineId,Label,Timestamp,Date,Node,Time,NodeRepeat,Type,Component,Level,Content,EventId,EventTemplate\n"), 0o600); err != nil {
		t.Fatalf("writing dataset: %v", err)
	}

	tests := []struct {
		name  string
		input string
		opts  *RunOptions
	}{
		{"zero workers", input, &RunOptions{OutputDir: dir, Workers: 0}},
		{"negative workers", input, &RunOptions{OutputDir: dir, Workers: -1}},
		{"missing input", filepath.Join(dir, "nope.csv"), &RunOptions{OutputDir: dir, Workers: 2}},
		{"no usable records", headerOnly, &RunOptions{OutputDir: dir, Workers: 2}},
		{"bad rules file", input, &RunOptions{OutputDir: dir, Workers: 2, RulesFile: filepath.Join(dir, "nope.yaml")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := runRun(tt.input, tt.opts); err == nil {
				t.Error("runRun() expected error")
			}
		})
	}
}
