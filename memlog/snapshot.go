package memlog

import "github.com/avassa-io/ra"

// InstallSnapshot replaces the snapshot descriptor and evicts every stored
// entry at or below the snapshot index in one cut. The index is not
// validated against the last accepted index: callers compact indices they
// know are committed, and a snapshot installed ahead of the log is tolerated
// until the next Write starting at the new boundary reconciles the two.
// Neither the last accepted index nor the write-ack cursor moves.
func (l *Log) InstallSnapshot(snap ra.Snapshot) {
	l.mu.Lock()
	defer l.mu.Unlock()

	evicted := l.evictThroughLocked(snap.LastIncludedIndex)

	cp := snap
	cp.Config.Members = append([]string(nil), snap.Config.Members...)
	cp.Data = append([]byte(nil), snap.Data...)
	l.snap = &cp

	l.logger.Debug("installed snapshot",
		"log_id", l.id,
		"snapshot_index", snap.LastIncludedIndex,
		"snapshot_term", snap.LastIncludedTerm,
		"evicted", evicted,
	)
	l.metrics.IncSnapshotInstall(l.id)
	if evicted > 0 {
		l.metrics.AddSnapshotEvicted(l.id, evicted)
	}
	l.metrics.SetSnapshotIndex(l.id, snap.LastIncludedIndex)
}

// ReadSnapshot returns a copy of the current snapshot descriptor, or nil if
// no compaction has occurred.
func (l *Log) ReadSnapshot() *ra.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.snap == nil {
		return nil
	}
	cp := *l.snap
	cp.Config.Members = append([]string(nil), l.snap.Config.Members...)
	cp.Data = append([]byte(nil), l.snap.Data...)
	return &cp
}

// SnapshotIndexTerm returns the (index, term) of the installed snapshot.
// ok is false when none is installed.
func (l *Log) SnapshotIndexTerm() (int64, int64, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.snap == nil {
		return 0, 0, false
	}
	return l.snap.LastIncludedIndex, l.snap.LastIncludedTerm, true
}

// UpdateReleaseCursor is accepted for parity with durable backends, which
// use the release cursor to decide what to discard from secondary storage.
// A volatile store has nothing to release.
func (l *Log) UpdateReleaseCursor(index int64, _ ra.ClusterConfig, _ []byte) {
	l.logger.Debug("release cursor updated",
		"log_id", l.id,
		"index", index,
	)
}

// evictThroughLocked removes stored entries with index <= bound and returns
// how many were removed. Caller must hold l.mu.
func (l *Log) evictThroughLocked(bound int64) int {
	if len(l.entries) == 0 || bound < l.firstIdx {
		return 0
	}
	if bound >= l.lastIdx {
		n := len(l.entries)
		l.entries = nil
		return n
	}
	cut := bound - l.firstIdx + 1
	l.entries = l.entries[cut:]
	l.firstIdx = bound + 1
	return int(cut)
}
