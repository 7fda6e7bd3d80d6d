// Package dispatch executes the per-record pipeline stages across a fixed
// pool of workers with dynamically assigned chunks.
package dispatch

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/triagekit/logtriage/pkg/record"
)

// DefaultWorkers is the worker count used when the caller does not choose
// one.
const DefaultWorkers = 32

// ChunkSize is the number of records a worker claims at a time. Chunks are
// handed out dynamically rather than pre-partitioned so that expensive
// records do not stall a static split.
const ChunkSize = 10

// progressInterval is the completed-record cadence for progress lines.
const progressInterval = 100

// Stage processes a single record in place.
type Stage func(*record.LogRecord)

// Dispatcher fans independent per-record work out to a fixed worker pool.
type Dispatcher struct {
	workers  int
	progress func(done, total int)
}

// Option configures dispatcher behavior.
type Option func(*Dispatcher)

// WithProgress replaces the default progress sink. The dispatcher serializes
// calls to the sink; fn itself does not need to be safe for concurrent use.
func WithProgress(fn func(done, total int)) Option {
	return func(d *Dispatcher) {
		d.progress = fn
	}
}

// New creates a dispatcher with the given worker count.
func New(workers int, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		workers: workers,
		progress: func(done, total int) {
			log.Info().Msgf("processed %d/%d records", done, total)
		},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run executes every stage, in order, on every record exactly once and
// returns the wall time of the whole parallel region. Records complete in no
// particular order; each record is owned by exactly one worker for the
// duration of its processing, so no per-record locking is needed. Run
// returns only after all workers have finished.
func (d *Dispatcher) Run(store *record.Store, stages ...Stage) (time.Duration, error) {
	if d.workers < 1 {
		return 0, fmt.Errorf("worker count must be at least 1, got %d", d.workers)
	}
	if store.Len() == 0 {
		return 0, errors.New("no records to process")
	}

	n := store.Len()

	var (
		cursor    atomic.Int64 // next unclaimed record index, advanced by ChunkSize
		completed atomic.Int64
		emitMu    sync.Mutex // serializes progress emission
		wg        sync.WaitGroup
	)

	start := time.Now()

	for w := 0; w < d.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				lo := int(cursor.Add(ChunkSize)) - ChunkSize
				if lo >= n {
					return
				}
				hi := lo + ChunkSize
				if hi > n {
					hi = n
				}
				for i := lo; i < hi; i++ {
					rec := store.At(i)
					for _, stage := range stages {
						stage(rec)
					}
					rec.TotalMs = rec.Stage1Ms + rec.Stage2Ms

					if done := completed.Add(1); done%progressInterval == 0 {
						emitMu.Lock()
						d.progress(int(done), n)
						emitMu.Unlock()
					}
				}
			}
		}()
	}

	wg.Wait()
	return time.Since(start), nil
}
