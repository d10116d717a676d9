package workload

import "time"

// Metrics captures workload-level metric sinks used by Driver.
type Metrics interface {
	ObserveAppendDuration(logID string, d time.Duration)
	ObserveWriteDuration(logID string, d time.Duration)
	ObserveTakeDuration(logID string, d time.Duration)
	ObserveSnapshotInstallDuration(logID string, d time.Duration)
	IncWriteRejected(logID string)
	SetAckLag(logID string, lag int64)
}

type noopMetrics struct{}

func (noopMetrics) ObserveAppendDuration(string, time.Duration)          {}
func (noopMetrics) ObserveWriteDuration(string, time.Duration)           {}
func (noopMetrics) ObserveTakeDuration(string, time.Duration)            {}
func (noopMetrics) ObserveSnapshotInstallDuration(string, time.Duration) {}
func (noopMetrics) IncWriteRejected(string)                              {}
func (noopMetrics) SetAckLag(string, int64)                              {}
