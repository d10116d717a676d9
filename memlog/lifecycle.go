package memlog

import "github.com/avassa-io/ra"

// CanWrite reports whether the store accepts writes. A volatile store has no
// backpressure, so it always does.
func (l *Log) CanWrite() bool { return true }

// WriteConfig accepts a cluster configuration for parity with durable
// backends that persist one outside the log; this variant discards it.
func (l *Log) WriteConfig(_ ra.ClusterConfig) error { return nil }

// ReadConfig reports no stored configuration: persisting the cluster config
// is a durable-backend concern.
func (l *Log) ReadConfig() (ra.ClusterConfig, bool) {
	return ra.ClusterConfig{}, false
}

// Reset discards all entries, the snapshot, the metadata, and the write-ack
// cursor, returning the store to its freshly created state.
func (l *Log) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.firstIdx = 0
	l.lastIdx = 0
	l.entries = nil
	l.writtenIdx = 0
	l.writtenTerm = 0
	l.snap = nil
	l.meta = make(map[ra.MetaKey][]byte)

	l.logger.Info("store reset", "log_id", l.id)
	l.metrics.SetLastIndex(l.id, 0)
	l.metrics.SetLastWrittenIndex(l.id, 0)
	l.metrics.SetSnapshotIndex(l.id, 0)
	return nil
}

// ReleaseResources is a no-op: the store holds nothing beyond process memory.
func (l *Log) ReleaseResources() error { return nil }

// Close releases nothing for this volatile variant.
func (l *Log) Close() error { return nil }

// Overview returns a point-in-time diagnostic summary of store state.
func (l *Log) Overview() ra.Overview {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := ra.Overview{
		Type:             "memory",
		LastIndex:        l.lastIdx,
		NumEntries:       len(l.entries),
		LastWrittenIndex: l.writtenIdx,
		LastWrittenTerm:  l.writtenTerm,
		MetaKeys:         len(l.meta),
	}
	if len(l.entries) > 0 {
		out.FirstIndex = l.firstIdx
	}
	if l.snap != nil {
		out.HasSnapshot = true
		out.SnapshotIndex = l.snap.LastIncludedIndex
		out.SnapshotTerm = l.snap.LastIncludedTerm
	}
	return out
}
