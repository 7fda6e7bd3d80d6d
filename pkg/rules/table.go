// Package rules provides the immutable keyword rule table used for
// classification.
package rules

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/triagekit/logtriage/pkg/record"
)

// Table maps label names to lowercase keyword fragments. A Table is never
// mutated after construction, so it is safe to share by reference across
// concurrent workers without locking.
type Table struct {
	labels    []string
	fragments map[string][]string
}

// New builds a validated table from a label-to-fragments mapping. Fragments
// are lowercased, trimmed, deduplicated, and sorted.
func New(fragments map[string][]string) (*Table, error) {
	if len(fragments) == 0 {
		return nil, errors.New("rule table must define at least one label")
	}

	t := &Table{
		labels:    make([]string, 0, len(fragments)),
		fragments: make(map[string][]string, len(fragments)),
	}

	for label, frags := range fragments {
		if label == "" {
			return nil, errors.New("label name must not be empty")
		}
		if label == record.NormalLabel {
			return nil, fmt.Errorf("label name %q is reserved for normal records", record.NormalLabel)
		}
		if len(frags) == 0 {
			return nil, fmt.Errorf("label %q: at least one fragment is required", label)
		}

		seen := make(map[string]struct{}, len(frags))
		cleaned := make([]string, 0, len(frags))
		for _, frag := range frags {
			frag = strings.ToLower(strings.TrimSpace(frag))
			if frag == "" {
				return nil, fmt.Errorf("label %q: fragment must not be empty", label)
			}
			if _, ok := seen[frag]; ok {
				continue
			}
			seen[frag] = struct{}{}
			cleaned = append(cleaned, frag)
		}
		sort.Strings(cleaned)

		t.labels = append(t.labels, label)
		t.fragments[label] = cleaned
	}

	// Lexicographic label order makes classification tie-breaks reproducible.
	sort.Strings(t.labels)

	return t, nil
}

// Load reads a rule table from a YAML file mapping label names to fragment
// lists, replacing the built-in table wholesale.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided rules path is expected
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}

	var fragments map[string][]string
	if err := yaml.Unmarshal(data, &fragments); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}

	t, err := New(fragments)
	if err != nil {
		return nil, fmt.Errorf("validating rules file: %w", err)
	}

	return t, nil
}

// Default returns the built-in rule table.
func Default() *Table {
	t, err := New(map[string][]string{
		"Network": {
			"connection", "timeout", "network", "socket",
			"refused", "unreachable", "dns", "port", "link",
		},
		"Resource": {
			"memory", "cpu", "disk", "allocation", "limit",
			"exceeded", "usage", "capacity", "resource",
		},
		"Security": {
			"authentication", "permission", "denied", "unauthorized",
			"access", "login", "credential", "security", "auth",
		},
		"Hardware": {
			"hardware", "device", "driver", "firmware", "physical",
		},
		"Application": {
			"error", "exception", "failed", "crash", "abort",
			"core", "fault", "fatal", "panic", "signal",
		},
	})
	if err != nil {
		panic(err) // built-in table is statically valid
	}
	return t
}

// Labels returns the label names in lexicographic order. Callers must not
// modify the returned slice.
func (t *Table) Labels() []string {
	return t.labels
}

// Fragments returns the sorted fragments for a label, or nil if the label is
// unknown. Callers must not modify the returned slice.
func (t *Table) Fragments(label string) []string {
	return t.fragments[label]
}

// Len returns the number of labels.
func (t *Table) Len() int {
	return len(t.labels)
}
