// Package memlog implements the volatile in-memory backing store for a
// replicated log.
//
// It keeps the contiguous run of accepted entries, the write-ack cursor, at
// most one snapshot descriptor, and an independent metadata map, all behind
// the ra.Storage contract. Nothing survives the process: durability belongs
// to sibling backends that satisfy the same contract.
package memlog

import (
	"errors"
	"fmt"
	"sync"

	"github.com/avassa-io/ra"
)

// ErrNilLogger is returned when New is called with a nil logger.
var ErrNilLogger = errors.New("memlog: nil logger")

// Logger is a minimal structured logger interface, compatible with slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Log is the volatile backing store for one consensus node session.
//
// The mutex makes individual operations safe in a multi-threaded host, but a
// Log is owned by a single session: callers must not interleave mutating
// call sequences from more than one logical writer.
type Log struct {
	mu sync.Mutex

	id string

	// entries holds the contiguous run firstIdx..lastIdx; entries[i] sits at
	// index firstIdx+i. lastIdx stays meaningful when the run is empty
	// (fresh store, or fully evicted by a snapshot install).
	firstIdx int64
	lastIdx  int64
	entries  []ra.LogEntry

	writtenIdx  int64
	writtenTerm int64

	snap *ra.Snapshot

	meta map[ra.MetaKey][]byte

	logger  Logger
	metrics Metrics
}

var _ ra.Storage = (*Log)(nil)

// New returns a fresh empty store identified by id. A nil metrics sink is
// replaced with a no-op implementation.
func New(id string, logger Logger, metrics Metrics) (*Log, error) {
	if logger == nil {
		return nil, ErrNilLogger
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Log{
		id:      id,
		meta:    make(map[ra.MetaKey][]byte),
		logger:  logger,
		metrics: metrics,
	}, nil
}

// Append accepts the single entry that continues the log at NextIndex.
// Calling it with any other index panics: it signals that the caller lost
// track of the next index, and continuing would corrupt the log. The store
// is not mutated before the check.
func (l *Log) Append(entry ra.LogEntry) ra.WrittenEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	if entry.Index != l.lastIdx+1 {
		panic(fmt.Sprintf("memlog: append index %d does not follow last index %d", entry.Index, l.lastIdx))
	}

	if len(l.entries) == 0 {
		l.firstIdx = entry.Index
	}
	l.entries = append(l.entries, cloneEntry(entry))
	l.lastIdx = entry.Index

	l.metrics.IncAppend(l.id)
	l.metrics.SetLastIndex(l.id, l.lastIdx)

	return ra.WrittenEvent{Origin: l.id, Index: entry.Index, Term: entry.Term}
}

// Write applies a non-empty batch of contiguous, index-ascending entries.
//
// A batch starting at or below NextIndex overwrites: stored entries from the
// start index up to the old last index are discarded first, then the batch
// is applied in order. A batch starting exactly one past the snapshot
// boundary begins a new run after compaction; there is nothing after the
// snapshot to truncate in that case. Any other start returns
// ra.ErrNonContiguousWrite, a malformed batch returns ra.ErrOutOfOrderBatch,
// and the store is unchanged on either. An empty batch is a no-op.
func (l *Log) Write(entries []ra.LogEntry) (ra.WrittenEvent, error) {
	if len(entries) == 0 {
		return ra.WrittenEvent{}, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	first := entries[0].Index
	for i, e := range entries {
		if e.Index != first+int64(i) {
			l.metrics.IncWriteReject(l.id, "out_of_order")
			return ra.WrittenEvent{}, fmt.Errorf("%w: index %d at offset %d, want %d",
				ra.ErrOutOfOrderBatch, e.Index, i, first+int64(i))
		}
	}

	removed := 0
	switch {
	case first >= 1 && first <= l.lastIdx+1:
		removed = l.truncateFromLocked(first)
	case l.snap != nil && first == l.snap.LastIncludedIndex+1:
		// First write after a compaction that ran ahead of the log.
	default:
		l.metrics.IncWriteReject(l.id, "non_contiguous")
		return ra.WrittenEvent{}, fmt.Errorf("%w: batch starts at %d, next index is %d",
			ra.ErrNonContiguousWrite, first, l.lastIdx+1)
	}

	if len(l.entries) == 0 {
		l.firstIdx = first
	}
	l.entries = append(l.entries, cloneEntries(entries)...)
	l.lastIdx = first + int64(len(entries)) - 1

	if removed > 0 {
		l.logger.Debug("truncated conflicting entries",
			"log_id", l.id,
			"from_index", first,
			"removed", removed,
		)
		l.metrics.AddTruncatedEntries(l.id, removed)
	}
	l.metrics.ObserveWriteBatch(l.id, len(entries))
	l.metrics.SetLastIndex(l.id, l.lastIdx)

	last := entries[len(entries)-1]
	return ra.WrittenEvent{Origin: l.id, Index: last.Index, Term: last.Term}, nil
}

// Take returns up to n stored entries from the window [start, start+n),
// ascending. Indices missing from the window (evicted by compaction, or past
// the end of the log) are skipped, so the result may be shorter than n,
// including empty.
func (l *Log) Take(start int64, n int) []ra.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || len(l.entries) == 0 {
		return nil
	}

	lo := start
	if lo < l.firstIdx {
		lo = l.firstIdx
	}
	hi := start + int64(n) - 1
	if hi > l.lastIdx {
		hi = l.lastIdx
	}
	if hi < lo {
		return nil
	}
	return cloneEntries(l.entries[lo-l.firstIdx : hi-l.firstIdx+1])
}

// Fetch returns the entry stored at index, if present. Absent indices are a
// valid outcome, not an error.
func (l *Log) Fetch(index int64) (ra.LogEntry, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entryAtLocked(index)
	if !ok {
		return ra.LogEntry{}, false
	}
	return cloneEntry(e), true
}

// FetchTerm returns the term of the entry stored at index, if present.
func (l *Log) FetchTerm(index int64) (int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entryAtLocked(index)
	if !ok {
		return 0, false
	}
	return e.Term, true
}

// NextIndex returns the index the next Append must use.
func (l *Log) NextIndex() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastIdx + 1
}

// LastIndexTerm resolves the index and term of the last accepted entry. When
// the entry at the last index has been evicted, the snapshot boundary stands
// in for it if the indices match. ok is false for an empty store with no
// snapshot, and for a snapshot installed ahead of the log until the next
// Write reconciles the two.
func (l *Log) LastIndexTerm() (int64, int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if e, ok := l.entryAtLocked(l.lastIdx); ok {
		return e.Index, e.Term, true
	}
	if l.snap != nil && l.snap.LastIncludedIndex == l.lastIdx {
		return l.snap.LastIncludedIndex, l.snap.LastIncludedTerm, true
	}
	return 0, 0, false
}

// AllEntries returns the full ordered run of stored entries.
func (l *Log) AllEntries() []ra.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneEntries(l.entries)
}

// entryAtLocked returns the entry at index, if stored. Caller must hold l.mu.
func (l *Log) entryAtLocked(index int64) (ra.LogEntry, bool) {
	if len(l.entries) == 0 || index < l.firstIdx || index > l.lastIdx {
		return ra.LogEntry{}, false
	}
	return l.entries[index-l.firstIdx], true
}

// truncateFromLocked discards stored entries with index >= first and returns
// how many were removed. Caller must hold l.mu.
func (l *Log) truncateFromLocked(first int64) int {
	switch {
	case len(l.entries) == 0 || first > l.lastIdx:
		return 0
	case first <= l.firstIdx:
		n := len(l.entries)
		l.entries = l.entries[:0]
		return n
	default:
		n := len(l.entries) - int(first-l.firstIdx)
		l.entries = l.entries[:first-l.firstIdx]
		return n
	}
}

func cloneEntry(e ra.LogEntry) ra.LogEntry {
	e.Data = append([]byte(nil), e.Data...)
	return e
}

func cloneEntries(src []ra.LogEntry) []ra.LogEntry {
	if len(src) == 0 {
		return nil
	}

	dst := make([]ra.LogEntry, len(src))
	for i, e := range src {
		dst[i] = cloneEntry(e)
	}
	return dst
}
