// Package ra defines the backing-store contract for a replicated log as
// consumed by a consensus node session.
//
// The contract is satisfied symmetrically by volatile and durable backends:
// every write is acknowledged through a WrittenEvent that the caller replays
// via HandleEvent, so the owning consensus component drives both kinds of
// backend through the same call sequence. The volatile implementation lives
// in the memlog package.
package ra

// Storage is the behavioral contract between one consensus node session and
// its log backing store. A store is owned by a single session and is never
// driven by more than one logical caller at a time; implementations guard
// each operation so that a multi-threaded host cannot corrupt state, but
// callers must not interleave mutating call sequences.
type Storage interface {
	// Append accepts the single entry that continues the log at NextIndex.
	// Any other index is a contract violation by the caller and panics
	// rather than returning an error; the store is left unmutated.
	Append(entry LogEntry) WrittenEvent

	// Write applies a non-empty batch of contiguous, index-ascending
	// entries. A batch starting at or below NextIndex overwrites: stored
	// entries from the start index up are discarded first (conflict
	// truncation), then the batch is applied. A batch starting exactly one
	// past the snapshot boundary begins a new run after compaction. Any
	// other start returns ErrNonContiguousWrite; a batch with a gap or
	// regression inside it returns ErrOutOfOrderBatch. The store is
	// unchanged on error. An empty batch is a no-op.
	Write(entries []LogEntry) (WrittenEvent, error)

	// Take returns up to n stored entries from the window [start, start+n),
	// ascending. Indices missing from the window are skipped, never
	// fabricated, so the result may be shorter than n, including empty.
	Take(start int64, n int) []LogEntry

	// Fetch returns the entry stored at index, if present.
	Fetch(index int64) (LogEntry, bool)

	// FetchTerm returns the term of the entry stored at index, if present.
	FetchTerm(index int64) (int64, bool)

	// NextIndex returns the index the next Append must use.
	NextIndex() int64

	// LastIndexTerm resolves the index and term of the last accepted entry,
	// falling back to the snapshot boundary when the entry at the last
	// index was compacted away. ok is false when neither resolves it.
	LastIndexTerm() (index, term int64, ok bool)

	// AllEntries returns the full ordered run of stored entries.
	// Diagnostic/export use only, not a hot path.
	AllEntries() []LogEntry

	// HandleEvent records a write acknowledgment. An event whose term no
	// longer matches the entry stored at its index is stale (the entry was
	// overwritten since) and is dropped without effect.
	HandleEvent(ev WrittenEvent)

	// LastWritten returns the last acknowledged (index, term), (0, 0) until
	// the first acknowledgment.
	LastWritten() (index, term int64)

	// InstallSnapshot replaces the snapshot descriptor and evicts every
	// stored entry at or below its index. The index is not validated
	// against the last accepted index; installing ahead of the log is
	// tolerated and reconciled by the next Write at the new boundary.
	InstallSnapshot(snap Snapshot)

	// ReadSnapshot returns the current snapshot descriptor, or nil if no
	// compaction has occurred.
	ReadSnapshot() *Snapshot

	// SnapshotIndexTerm returns the (index, term) of the installed
	// snapshot. ok is false when none is installed.
	SnapshotIndexTerm() (index, term int64, ok bool)

	// UpdateReleaseCursor tells the store which prefix the state machine no
	// longer needs. Durable backends use it to discard persisted segments;
	// a volatile store accepts it for parity.
	UpdateReleaseCursor(index int64, cfg ClusterConfig, machineState []byte)

	// ReadMeta returns the metadata value stored under key, if present.
	ReadMeta(key MetaKey) ([]byte, bool)

	// WriteMeta stores value under key, overwriting any previous value.
	WriteMeta(key MetaKey, value []byte) error

	// ReadMetaUint64 reads a metadata value written by WriteMetaUint64.
	ReadMetaUint64(key MetaKey) (uint64, bool)

	// WriteMetaUint64 stores a uint64 metadata value under key.
	WriteMetaUint64(key MetaKey, value uint64) error

	// SyncMeta flushes buffered metadata writes on backends that buffer.
	SyncMeta() error

	// CanWrite reports whether the store currently accepts writes.
	CanWrite() bool

	// WriteConfig persists the cluster configuration on backends that keep
	// one outside the log.
	WriteConfig(cfg ClusterConfig) error

	// ReadConfig returns the persisted cluster configuration, if any.
	ReadConfig() (ClusterConfig, bool)

	// Reset discards all store state, returning it to freshly created.
	Reset() error

	// ReleaseResources frees resources held outside the store value itself.
	ReleaseResources() error

	// Overview returns a point-in-time diagnostic summary.
	Overview() Overview

	// Close releases the store at session teardown.
	Close() error
}

// Overview is a point-in-time diagnostic summary of store state.
type Overview struct {
	Type             string `json:"type"`
	FirstIndex       int64  `json:"first_index"`
	LastIndex        int64  `json:"last_index"`
	NumEntries       int    `json:"num_entries"`
	LastWrittenIndex int64  `json:"last_written_index"`
	LastWrittenTerm  int64  `json:"last_written_term"`
	SnapshotIndex    int64  `json:"snapshot_index"`
	SnapshotTerm     int64  `json:"snapshot_term"`
	HasSnapshot      bool   `json:"has_snapshot"`
	MetaKeys         int    `json:"meta_keys"`
}
