package memlog

import (
	"fmt"
	"log/slog"

	"github.com/avassa-io/ra"
)

func newTestLog() *Log {
	l, err := New("log-1", slog.Default(), nil)
	if err != nil {
		panic(err)
	}
	return l
}

func testEntry(index, term int64) ra.LogEntry {
	return ra.LogEntry{
		Index: index,
		Term:  term,
		Data:  []byte(fmt.Sprintf("payload-%d", index)),
	}
}

// appendN appends n contiguous entries at the given term, without feeding
// the acknowledgments back.
func appendN(l *Log, n int, term int64) {
	for i := 0; i < n; i++ {
		l.Append(testEntry(l.NextIndex(), term))
	}
}

func entryIndexes(entries []ra.LogEntry) []int64 {
	out := make([]int64, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Index)
	}
	return out
}
