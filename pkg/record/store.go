package record

// Store is the ordered in-memory working set of records for one run. It
// exclusively owns every record from ingestion until process exit: records
// are mutated only during dispatch (one worker per record) and are read-only
// during aggregation and output.
type Store struct {
	records []*LogRecord
}

// NewStore creates a store over the given records, preserving their order.
func NewStore(records []*LogRecord) *Store {
	return &Store{records: records}
}

// Len returns the number of records.
func (s *Store) Len() int {
	return len(s.records)
}

// At returns the record at index i.
func (s *Store) At(i int) *LogRecord {
	return s.records[i]
}

// Records returns the underlying record slice. Callers must not reorder or
// replace entries while dispatch is running.
func (s *Store) Records() []*LogRecord {
	return s.records
}

// GroundTruthDistribution counts records per ground-truth label.
func (s *Store) GroundTruthDistribution() map[string]int {
	dist := make(map[string]int)
	for _, rec := range s.records {
		dist[rec.Label]++
	}
	return dist
}

// PredictedDistribution counts records per predicted label. Meaningful only
// after dispatch has completed.
func (s *Store) PredictedDistribution() map[string]int {
	dist := make(map[string]int)
	for _, rec := range s.records {
		dist[rec.Predicted]++
	}
	return dist
}
