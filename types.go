package ra

import "errors"

// EntryType identifies the kind of replicated log entry payload.
type EntryType uint8

// Supported log entry types.
const (
	EntryCommand EntryType = 0 // backward-compat zero value
)

// LogEntry is a single entry in the replicated log. Index is 1-based; index 0
// is the origin sentinel and never holds an entry.
type LogEntry struct {
	Index int64     `json:"index"`
	Term  int64     `json:"term"`
	Type  EntryType `json:"type"`
	Data  []byte    `json:"data"`
}

// ClusterConfig holds the set of member IDs active at a snapshot boundary.
type ClusterConfig struct {
	Members []string `json:"members"` // all member IDs including self
}

// Snapshot describes a compacted log prefix. Every entry with index at or
// below LastIncludedIndex is superseded by Data.
type Snapshot struct {
	LastIncludedIndex int64         `json:"last_included_index"`
	LastIncludedTerm  int64         `json:"last_included_term"`
	Config            ClusterConfig `json:"config"`
	Data              []byte        `json:"data"`
}

// WrittenEvent acknowledges a completed write. Append and Write return one
// per call; the owning caller feeds it back through Storage.HandleEvent after
// its commit step, mirroring the asynchronous acknowledgment protocol of a
// durable backend.
type WrittenEvent struct {
	Origin string `json:"origin"`
	Index  int64  `json:"index"`
	Term   int64  `json:"term"`
}

// MetaKey names a value in the protocol metadata namespace. Arbitrary keys
// are allowed; the constants below are the ones consensus callers use.
type MetaKey string

// Well-known metadata keys.
const (
	MetaCurrentTerm MetaKey = "current_term"
	MetaVotedFor    MetaKey = "voted_for"
	MetaLastApplied MetaKey = "last_applied"
)

// ErrNonContiguousWrite is returned by Write when the batch start neither
// continues the log nor continues the snapshot boundary.
var ErrNonContiguousWrite = errors.New("ra: non-contiguous write")

// ErrOutOfOrderBatch is returned by Write when the batch indices are not
// contiguous ascending.
var ErrOutOfOrderBatch = errors.New("ra: out of order write batch")
