package memlog

import "github.com/avassa-io/ra"

// HandleEvent records a write acknowledgment. The event is honored only when
// the term stored at the acknowledged index still matches: an entry replaced
// by conflict truncation since the write makes the acknowledgment stale, and
// stale acknowledgments are dropped without moving the cursor.
func (l *Log) HandleEvent(ev ra.WrittenEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entryAtLocked(ev.Index)
	if !ok || e.Term != ev.Term {
		l.logger.Debug("dropping stale written event",
			"log_id", l.id,
			"origin", ev.Origin,
			"index", ev.Index,
			"term", ev.Term,
		)
		l.metrics.IncStaleWrittenEvent(l.id)
		return
	}

	l.writtenIdx = ev.Index
	l.writtenTerm = ev.Term
	l.metrics.SetLastWrittenIndex(l.id, ev.Index)
}

// LastWritten returns the last acknowledged (index, term), (0, 0) until the
// first acknowledgment.
func (l *Log) LastWritten() (int64, int64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.writtenIdx, l.writtenTerm
}
