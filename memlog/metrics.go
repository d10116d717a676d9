package memlog

// Metrics captures store-level metric sinks used by the Log implementation.
type Metrics interface {
	IncAppend(logID string)
	ObserveWriteBatch(logID string, n int)
	IncWriteReject(logID, reason string)
	AddTruncatedEntries(logID string, n int)
	IncSnapshotInstall(logID string)
	AddSnapshotEvicted(logID string, n int)
	IncStaleWrittenEvent(logID string)
	IncMetaWrite(logID, key string)
	SetLastIndex(logID string, index int64)
	SetLastWrittenIndex(logID string, index int64)
	SetSnapshotIndex(logID string, index int64)
}

type noopMetrics struct{}

func (noopMetrics) IncAppend(string)                  {}
func (noopMetrics) ObserveWriteBatch(string, int)     {}
func (noopMetrics) IncWriteReject(string, string)     {}
func (noopMetrics) AddTruncatedEntries(string, int)   {}
func (noopMetrics) IncSnapshotInstall(string)         {}
func (noopMetrics) AddSnapshotEvicted(string, int)    {}
func (noopMetrics) IncStaleWrittenEvent(string)       {}
func (noopMetrics) IncMetaWrite(string, string)       {}
func (noopMetrics) SetLastIndex(string, int64)        {}
func (noopMetrics) SetLastWrittenIndex(string, int64) {}
func (noopMetrics) SetSnapshotIndex(string, int64)    {}
