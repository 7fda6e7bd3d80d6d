// Package record defines the in-memory log record data model shared by
// ingestion, classification, and reporting.
package record

// NormalLabel is the sentinel label for records that represent normal
// (non-issue) activity. It is used both as a ground-truth value and as the
// predicted label when no rule category applies.
const NormalLabel = "-"

// Confidence is the coarse strength indicator for a prediction.
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Severity is the normalized urgency bucket derived from the record's raw
// level field.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityError    Severity = "ERROR"
	SeverityWarning  Severity = "WARNING"
	SeverityInfo     Severity = "INFO"
)

// Category buckets an issue by the vocabulary of its keywords.
type Category string

const (
	CategoryConfiguration Category = "Configuration"
	CategoryPerformance   Category = "Performance"
	CategoryConnectivity  Category = "Connectivity"
	CategoryGeneral       Category = "General"
)

// LogRecord is one ingested log line plus its analysis and timing results.
//
// Input fields are immutable after ingestion. Analysis and timing fields are
// written exactly once, by the single worker that owns the record while it
// is being processed; after dispatch completes they are read-only.
type LogRecord struct {
	// Input fields, populated by the parser.
	LineID        int
	Label         string // ground truth; NormalLabel means normal
	Timestamp     string
	Date          string
	Node          string
	Time          string
	Component     string
	Level         string
	Content       string
	EventTemplate string

	// Analysis results, populated by the rule engine.
	Keywords          []string // sorted, deduplicated, at most ten
	Predicted         string
	Confidence        Confidence
	Severity          Severity
	AffectedComponent string
	Category          Category

	// Per-stage timings in milliseconds.
	Stage1Ms float64
	Stage2Ms float64
	TotalMs  float64
}
