package commands

import "testing"

func TestNewRunCommand_Defaults(t *testing.T) {
	cmd := NewRunCommand()

	if cmd.Use != "run <input-csv>" {
		t.Errorf("Use = %q", cmd.Use)
	}

	workers, err := cmd.Flags().GetInt("workers")
	if err != nil {
		t.Fatalf("workers flag: %v", err)
	}
	if workers != 32 {
		t.Errorf("default workers = %d, want 32", workers)
	}

	outDir, err := cmd.Flags().GetString("output-dir")
	if err != nil {
		t.Fatalf("output-dir flag: %v", err)
	}
	if outDir != "output" {
		t.Errorf("default output-dir = %q, want output", outDir)
	}
}

func TestNewVersionCommand(t *testing.T) {
	cmd := NewVersionCommand()
	if cmd.Use != "version" {
		t.Errorf("Use = %q, want version", cmd.Use)
	}
	if Version == "" {
		t.Error("Version must have a default")
	}
}
