package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/triagekit/logtriage/pkg/rules"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <rules-file>",
		Short: "Validate a rule table file",
		Long: `Validate a YAML rule table file without running classification.

Checks:
  - YAML syntax
  - At least one label with at least one fragment
  - No empty or reserved label names
  - No empty fragments`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	rulesPath := args[0]

	fmt.Printf("Validating %s...\n", rulesPath)

	table, err := rules.Load(rulesPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nRule table valid!\n")
	fmt.Printf("  Labels: %d\n", table.Len())

	fmt.Printf("\nLabels (in tie-break order):\n")
	for i, label := range table.Labels() {
		fmt.Printf("  %d. %s (%d fragments)\n", i+1, label, len(table.Fragments(label)))
	}

	return nil
}
