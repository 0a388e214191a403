package metrics

import (
	"sync"
	"time"
)

type repoStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type statsKey struct {
	store     string
	operation string
}

// Recorder captures lightweight, in-memory metrics about repository calls and
// forwards them to OpenTelemetry instruments when configured. Stats are kept
// per operation across all stores and per store/operation pair.
type Recorder struct {
	mu    sync.Mutex
	stats map[statsKey]*repoStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[statsKey]*repoStats),
		otel:  otel,
	}
}

// RecordRepoCall increments counters for a repository operation and stores the last observed latency.
func (r *Recorder) RecordRepoCall(store, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	keys := []statsKey{{operation: operation}}
	if store != "" {
		keys = append(keys, statsKey{store: store, operation: operation})
	}

	r.mu.Lock()
	for _, key := range keys {
		stats := r.ensureStatsLocked(key)
		stats.calls++
		stats.lastCallLatency = duration
		if err != nil {
			stats.errors++
		}
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRepoCall(store, operation, duration, err)
	}
}

// RepoCalls returns the total calls recorded for an operation.
func (r *Recorder) RepoCalls(operation string) int {
	return r.Snapshot(operation).Calls
}

// RepoErrors returns the total failed calls recorded for an operation.
func (r *Recorder) RepoErrors(operation string) int {
	return r.Snapshot(operation).Errors
}

// LastCallLatency returns the last recorded latency for an operation.
func (r *Recorder) LastCallLatency(operation string) time.Duration {
	return r.Snapshot(operation).LastCallLatency
}

// Snapshot is a copy of the current stats for one operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Snapshot returns the stats for an operation aggregated over every store.
func (r *Recorder) Snapshot(operation string) Snapshot {
	return r.snapshotFor(statsKey{operation: operation})
}

// StoreSnapshot returns the stats for an operation on a single store.
func (r *Recorder) StoreSnapshot(store, operation string) Snapshot {
	return r.snapshotFor(statsKey{store: store, operation: operation})
}

func (r *Recorder) snapshotFor(key statsKey) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(key)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ensureStatsLocked must be called with r.mu held.
func (r *Recorder) ensureStatsLocked(key statsKey) *repoStats {
	stats, ok := r.stats[key]
	if !ok {
		stats = &repoStats{}
		r.stats[key] = stats
	}
	return stats
}

func (r *Recorder) snapshot(key statsKey) repoStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[key]; ok && stats != nil {
		return *stats
	}
	return repoStats{}
}
