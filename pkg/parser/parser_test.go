package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/triagekit/logtriage/pkg/record"
)

const csvHeader = "LineId,Label,Timestamp,Date,Node,Time,NodeRepeat,Type,Component,Level,Content,EventId,EventTemplate\n"

func TestRead(t *testing.T) {
	input := csvHeader +
		"1,-,1131566461,2005.11.09,R02-M1-N0,2005-11-09-15.21.01,R02-M1-N0,RAS,KERNEL,INFO,instruction cache parity error corrected,E77,instruction cache parity error corrected\n" +
		"2,Network,1131566462,2005.11.09,R02-M1-N1,2005-11-09-15.21.02,R02-M1-N1,RAS,KERNEL,WARN,connection timeout to remote host,E12,connection timeout\n"

	store, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", store.Len())
	}

	first := store.At(0)
	if first.LineID != 1 {
		t.Errorf("LineID = %d, want 1", first.LineID)
	}
	if first.Label != record.NormalLabel {
		t.Errorf("Label = %q, want %q", first.Label, record.NormalLabel)
	}
	if first.Component != "KERNEL" {
		t.Errorf("Component = %q, want KERNEL", first.Component)
	}
	if first.Content != "instruction cache parity error corrected" {
		t.Errorf("Content = %q", first.Content)
	}

	second := store.At(1)
	if second.Label != "Network" || second.Level != "WARN" {
		t.Errorf("second record = %+v", second)
	}
}

func TestRead_EmptyLabelNormalizes(t *testing.T) {
	input := csvHeader +
		"1,,ts,date,node,time,rep,type,comp,INFO,all good,E1,template\n"

	store, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
	if store.At(0).Label != record.NormalLabel {
		t.Errorf("Label = %q, want %q", store.At(0).Label, record.NormalLabel)
	}
}

func TestRead_QuotedCommaContent(t *testing.T) {
	input := csvHeader +
		`1,-,ts,date,node,time,rep,type,comp,ERROR,"memory allocation failed, exceeded limit",E2,template` + "\n"

	store, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
	if want := "memory allocation failed, exceeded limit"; store.At(0).Content != want {
		t.Errorf("Content = %q, want %q", store.At(0).Content, want)
	}
}

func TestRead_DropsMalformedRows(t *testing.T) {
	input := csvHeader +
		"1,-,ts,date,node,time,rep,type,comp,INFO,ok,E1,template\n" +
		"too,short,row\n" +
		"notanumber,-,ts,date,node,time,rep,type,comp,INFO,bad id,E1,template\n" +
		"-5,-,ts,date,node,time,rep,type,comp,INFO,negative id,E1,template\n" +
		"2,-,ts,date,node,time,rep,type,comp,INFO,also ok,E1,template\n"

	store, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}

	if store.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (malformed rows dropped)", store.Len())
	}
	if store.At(0).LineID != 1 || store.At(1).LineID != 2 {
		t.Errorf("surviving LineIDs = %d, %d, want 1, 2", store.At(0).LineID, store.At(1).LineID)
	}
}

func TestRead_HeaderOnly(t *testing.T) {
	store, err := Read(strings.NewReader(csvHeader))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestRead_EmptyInput(t *testing.T) {
	store, err := Read(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
}

func TestLoadCSV(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.csv")
	content := csvHeader +
		"1,-,ts,date,node,time,rep,type,comp,INFO,system running normally,E1,template\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("writing input: %v", err)
	}

	store, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("LoadCSV() error = %v", err)
	}
	if store.Len() != 1 {
		t.Errorf("Len() = %d, want 1", store.Len())
	}
}

func TestLoadCSV_MissingFile(t *testing.T) {
	if _, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("LoadCSV() expected error for missing file")
	}
}
