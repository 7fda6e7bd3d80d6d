// Package engine implements the two per-record processing stages:
// rule-based classification (stage 1) and report generation (stage 2).
package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/triagekit/logtriage/pkg/record"
	"github.com/triagekit/logtriage/pkg/rules"
)

// maxKeywords caps the extracted keyword list per record.
const maxKeywords = 10

// RuleEngine classifies a single record against an immutable rule table. It
// is stateless across records, so one instance is safe for concurrent use by
// any number of workers.
type RuleEngine struct {
	table *rules.Table
}

// NewRuleEngine creates a rule engine over the given table.
func NewRuleEngine(table *rules.Table) *RuleEngine {
	return &RuleEngine{table: table}
}

// Analyze runs stage 1 on the record: keyword extraction, classification,
// confidence, severity, and categorization. It mutates only the record's
// analysis fields and Stage1Ms, and reads only its Content, Level, and
// Component.
func (e *RuleEngine) Analyze(rec *record.LogRecord) {
	start := time.Now()

	rec.Keywords = ExtractKeywords(rec.Content)
	rec.Predicted = e.classify(rec.Keywords, rec.Level)
	rec.Confidence = e.confidence(rec.Keywords, rec.Predicted)
	rec.Severity = DetermineSeverity(rec.Level)
	rec.AffectedComponent = rec.Component
	rec.Category = Categorize(rec.Keywords)

	rec.Stage1Ms = time.Since(start).Seconds() * 1000
}

// ExtractKeywords lowercases the content, splits it on whitespace, strips
// non-alphanumeric characters from each token, drops tokens shorter than
// three characters, deduplicates, sorts, and keeps the first ten. Empty
// content yields an empty list.
func ExtractKeywords(content string) []string {
	seen := make(map[string]struct{})
	var keywords []string

	for _, token := range strings.Fields(strings.ToLower(content)) {
		var b strings.Builder
		for _, r := range token {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				b.WriteRune(r)
			}
		}
		word := b.String()
		if len(word) <= 2 {
			continue
		}
		if _, ok := seen[word]; ok {
			continue
		}
		seen[word] = struct{}{}
		keywords = append(keywords, word)
	}

	sort.Strings(keywords)
	if len(keywords) > maxKeywords {
		keywords = keywords[:maxKeywords]
	}
	return keywords
}

// classify scores every label by counting (keyword, fragment) pairs where
// either string contains the other, and picks the strictly highest score.
// Ties resolve to the lexicographically first label because Labels() is
// sorted and only a strictly greater score replaces the current best. A max
// score of zero, or of one or less on an INFO-level record, yields the
// normal sentinel.
func (e *RuleEngine) classify(keywords []string, level string) string {
	best := record.NormalLabel
	maxScore := 0

	for _, label := range e.table.Labels() {
		score := 0
		for _, kw := range keywords {
			for _, frag := range e.table.Fragments(label) {
				if strings.Contains(kw, frag) || strings.Contains(frag, kw) {
					score++
				}
			}
		}
		if score > maxScore {
			maxScore = score
			best = label
		}
	}

	if maxScore <= 1 && level == "INFO" {
		return record.NormalLabel
	}
	return best
}

// confidence derives the confidence tier for a prediction. Matching here is
// one-directional: a fragment must appear inside a keyword.
//
// For the normal sentinel, any fragment match at all means the record
// carries problem vocabulary the classifier did not act on, so the "normal"
// verdict is uncertain.
func (e *RuleEngine) confidence(keywords []string, predicted string) record.Confidence {
	if predicted == record.NormalLabel {
		for _, label := range e.table.Labels() {
			for _, kw := range keywords {
				for _, frag := range e.table.Fragments(label) {
					if strings.Contains(kw, frag) {
						return record.ConfidenceLow
					}
				}
			}
		}
		return record.ConfidenceHigh
	}

	matches := 0
	for _, kw := range keywords {
		for _, frag := range e.table.Fragments(predicted) {
			if strings.Contains(kw, frag) {
				matches++
				break
			}
		}
	}

	switch {
	case matches >= 3:
		return record.ConfidenceHigh
	case matches >= 1:
		return record.ConfidenceMedium
	default:
		return record.ConfidenceLow
	}
}

// DetermineSeverity maps a raw level field to its severity tier. Unknown
// levels, including the empty string, map to INFO.
func DetermineSeverity(level string) record.Severity {
	switch level {
	case "CRITICAL", "FATAL":
		return record.SeverityCritical
	case "ERROR":
		return record.SeverityError
	case "WARN", "WARNING":
		return record.SeverityWarning
	default:
		return record.SeverityInfo
	}
}

// Categorize picks the issue category from the first keyword, in sorted
// keyword order, that names a known concern. The config/perform/connect
// checks run in that fixed precedence order for each keyword.
func Categorize(keywords []string) record.Category {
	for _, kw := range keywords {
		switch {
		case strings.Contains(kw, "config"):
			return record.CategoryConfiguration
		case strings.Contains(kw, "perform"):
			return record.CategoryPerformance
		case strings.Contains(kw, "connect"):
			return record.CategoryConnectivity
		}
	}
	return record.CategoryGeneral
}
