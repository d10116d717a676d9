//revive:disable:var-naming
//revive:disable:exported
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Prometheus exposes application metrics and can be injected into the store
// and workload layers. It implements both memlog.Metrics and
// internal/workload.Metrics through method set compatibility, without
// importing those packages.
type Prometheus struct {
	logAppendTotal            *prometheus.CounterVec
	logWriteBatchEntries      *prometheus.HistogramVec
	logWriteRejectTotal       *prometheus.CounterVec
	logTruncatedEntriesTotal  *prometheus.CounterVec
	logSnapshotInstallTotal   *prometheus.CounterVec
	logSnapshotEvictedTotal   *prometheus.CounterVec
	logStaleWrittenEventTotal *prometheus.CounterVec
	logMetaWriteTotal         *prometheus.CounterVec
	logLastIndex              *prometheus.GaugeVec
	logLastWrittenIndex       *prometheus.GaugeVec
	logSnapshotIndex          *prometheus.GaugeVec

	workloadAppendDuration     *prometheus.HistogramVec
	workloadWriteDuration      *prometheus.HistogramVec
	workloadTakeDuration       *prometheus.HistogramVec
	workloadSnapshotInstallDur *prometheus.HistogramVec
	workloadWriteRejectedTotal *prometheus.CounterVec
	workloadAckLag             *prometheus.GaugeVec
}

// storeOpBuckets covers in-memory store operations, which complete in
// microseconds rather than the milliseconds of a disk-backed store.
var storeOpBuckets = []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01}

func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Prometheus{
		logAppendTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "append_total",
				Help:      "Single entries accepted through the append path.",
			},
			[]string{"log_id"},
		),
		logWriteBatchEntries: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "write_batch_entries",
				Help:      "Entries per accepted write batch.",
				Buckets:   []float64{1, 2, 4, 8, 16, 32, 64, 128, 256, 512},
			},
			[]string{"log_id"},
		),
		logWriteRejectTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "write_reject_total",
				Help:      "Rejected write batches by reason (non_contiguous, out_of_order).",
			},
			[]string{"log_id", "reason"},
		),
		logTruncatedEntriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "truncated_entries_total",
				Help:      "Stored entries discarded by conflict truncation on overwrite.",
			},
			[]string{"log_id"},
		),
		logSnapshotInstallTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "snapshot_install_total",
				Help:      "Snapshot descriptors installed into the store.",
			},
			[]string{"log_id"},
		),
		logSnapshotEvictedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "snapshot_evicted_entries_total",
				Help:      "Stored entries evicted by snapshot installs.",
			},
			[]string{"log_id"},
		),
		logStaleWrittenEventTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "stale_written_event_total",
				Help:      "Write acknowledgments dropped because the entry term no longer matches.",
			},
			[]string{"log_id"},
		),
		logMetaWriteTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "meta_write_total",
				Help:      "Metadata writes by key.",
			},
			[]string{"log_id", "key"},
		),
		logLastIndex: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "last_index",
				Help:      "Index of the last accepted entry.",
			},
			[]string{"log_id"},
		),
		logLastWrittenIndex: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "last_written_index",
				Help:      "Index of the last acknowledged entry.",
			},
			[]string{"log_id"},
		),
		logSnapshotIndex: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ra",
				Subsystem: "log",
				Name:      "snapshot_index",
				Help:      "Index covered by the installed snapshot.",
			},
			[]string{"log_id"},
		),
		workloadAppendDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ra",
				Subsystem: "workload",
				Name:      "append_duration_seconds",
				Help:      "Duration of single-entry appends as seen by the workload.",
				Buckets:   storeOpBuckets,
			},
			[]string{"log_id"},
		),
		workloadWriteDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ra",
				Subsystem: "workload",
				Name:      "write_duration_seconds",
				Help:      "Duration of batch writes as seen by the workload.",
				Buckets:   storeOpBuckets,
			},
			[]string{"log_id"},
		),
		workloadTakeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ra",
				Subsystem: "workload",
				Name:      "take_duration_seconds",
				Help:      "Duration of window reads as seen by the workload.",
				Buckets:   storeOpBuckets,
			},
			[]string{"log_id"},
		),
		workloadSnapshotInstallDur: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "ra",
				Subsystem: "workload",
				Name:      "snapshot_install_duration_seconds",
				Help:      "Duration of snapshot installs as seen by the workload.",
				Buckets:   storeOpBuckets,
			},
			[]string{"log_id"},
		),
		workloadWriteRejectedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "ra",
				Subsystem: "workload",
				Name:      "write_rejected_total",
				Help:      "Writes the store rejected during a workload run.",
			},
			[]string{"log_id"},
		),
		workloadAckLag: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "ra",
				Subsystem: "workload",
				Name:      "ack_lag",
				Help:      "Entries accepted but not yet acknowledged back to the store.",
			},
			[]string{"log_id"},
		),
	}

	if err := m.register(reg); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Prometheus) register(reg prometheus.Registerer) error {
	if err := registerOrReuseCounterVec(reg, &m.logAppendTotal); err != nil {
		return fmt.Errorf("register log append counter: %w", err)
	}
	if err := registerOrReuseHistogramVec(reg, &m.logWriteBatchEntries); err != nil {
		return fmt.Errorf("register log write batch histogram: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.logWriteRejectTotal); err != nil {
		return fmt.Errorf("register log write reject counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.logTruncatedEntriesTotal); err != nil {
		return fmt.Errorf("register log truncated entries counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.logSnapshotInstallTotal); err != nil {
		return fmt.Errorf("register log snapshot install counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.logSnapshotEvictedTotal); err != nil {
		return fmt.Errorf("register log snapshot evicted counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.logStaleWrittenEventTotal); err != nil {
		return fmt.Errorf("register log stale written event counter: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.logMetaWriteTotal); err != nil {
		return fmt.Errorf("register log meta write counter: %w", err)
	}
	if err := registerOrReuseGaugeVec(reg, &m.logLastIndex); err != nil {
		return fmt.Errorf("register log last index gauge: %w", err)
	}
	if err := registerOrReuseGaugeVec(reg, &m.logLastWrittenIndex); err != nil {
		return fmt.Errorf("register log last written index gauge: %w", err)
	}
	if err := registerOrReuseGaugeVec(reg, &m.logSnapshotIndex); err != nil {
		return fmt.Errorf("register log snapshot index gauge: %w", err)
	}
	if err := registerOrReuseHistogramVec(reg, &m.workloadAppendDuration); err != nil {
		return fmt.Errorf("register workload append duration histogram: %w", err)
	}
	if err := registerOrReuseHistogramVec(reg, &m.workloadWriteDuration); err != nil {
		return fmt.Errorf("register workload write duration histogram: %w", err)
	}
	if err := registerOrReuseHistogramVec(reg, &m.workloadTakeDuration); err != nil {
		return fmt.Errorf("register workload take duration histogram: %w", err)
	}
	if err := registerOrReuseHistogramVec(reg, &m.workloadSnapshotInstallDur); err != nil {
		return fmt.Errorf("register workload snapshot install histogram: %w", err)
	}
	if err := registerOrReuseCounterVec(reg, &m.workloadWriteRejectedTotal); err != nil {
		return fmt.Errorf("register workload write rejected counter: %w", err)
	}
	if err := registerOrReuseGaugeVec(reg, &m.workloadAckLag); err != nil {
		return fmt.Errorf("register workload ack lag gauge: %w", err)
	}
	return nil
}

func registerOrReuseHistogramVec(reg prometheus.Registerer, c **prometheus.HistogramVec) error {
	if err := reg.Register(*c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		existing, ok := already.ExistingCollector.(*prometheus.HistogramVec)
		if !ok {
			return fmt.Errorf("collector type mismatch for %T", *c)
		}
		*c = existing
	}
	return nil
}

func registerOrReuseCounterVec(reg prometheus.Registerer, c **prometheus.CounterVec) error {
	if err := reg.Register(*c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		existing, ok := already.ExistingCollector.(*prometheus.CounterVec)
		if !ok {
			return fmt.Errorf("collector type mismatch for %T", *c)
		}
		*c = existing
	}
	return nil
}

func registerOrReuseGaugeVec(reg prometheus.Registerer, c **prometheus.GaugeVec) error {
	if err := reg.Register(*c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if !errors.As(err, &already) {
			return err
		}
		existing, ok := already.ExistingCollector.(*prometheus.GaugeVec)
		if !ok {
			return fmt.Errorf("collector type mismatch for %T", *c)
		}
		*c = existing
	}
	return nil
}

func (m *Prometheus) IncAppend(logID string) {
	m.logAppendTotal.WithLabelValues(logID).Inc()
}

func (m *Prometheus) ObserveWriteBatch(logID string, n int) {
	if n < 0 {
		n = 0
	}
	m.logWriteBatchEntries.WithLabelValues(logID).Observe(float64(n))
}

func (m *Prometheus) IncWriteReject(logID, reason string) {
	m.logWriteRejectTotal.WithLabelValues(logID, reason).Inc()
}

func (m *Prometheus) AddTruncatedEntries(logID string, n int) {
	if n <= 0 {
		return
	}
	m.logTruncatedEntriesTotal.WithLabelValues(logID).Add(float64(n))
}

func (m *Prometheus) IncSnapshotInstall(logID string) {
	m.logSnapshotInstallTotal.WithLabelValues(logID).Inc()
}

func (m *Prometheus) AddSnapshotEvicted(logID string, n int) {
	if n <= 0 {
		return
	}
	m.logSnapshotEvictedTotal.WithLabelValues(logID).Add(float64(n))
}

func (m *Prometheus) IncStaleWrittenEvent(logID string) {
	m.logStaleWrittenEventTotal.WithLabelValues(logID).Inc()
}

func (m *Prometheus) IncMetaWrite(logID, key string) {
	m.logMetaWriteTotal.WithLabelValues(logID, key).Inc()
}

func (m *Prometheus) SetLastIndex(logID string, index int64) {
	m.logLastIndex.WithLabelValues(logID).Set(float64(index))
}

func (m *Prometheus) SetLastWrittenIndex(logID string, index int64) {
	m.logLastWrittenIndex.WithLabelValues(logID).Set(float64(index))
}

func (m *Prometheus) SetSnapshotIndex(logID string, index int64) {
	m.logSnapshotIndex.WithLabelValues(logID).Set(float64(index))
}

func (m *Prometheus) ObserveAppendDuration(logID string, d time.Duration) {
	m.workloadAppendDuration.WithLabelValues(logID).Observe(d.Seconds())
}

func (m *Prometheus) ObserveWriteDuration(logID string, d time.Duration) {
	m.workloadWriteDuration.WithLabelValues(logID).Observe(d.Seconds())
}

func (m *Prometheus) ObserveTakeDuration(logID string, d time.Duration) {
	m.workloadTakeDuration.WithLabelValues(logID).Observe(d.Seconds())
}

func (m *Prometheus) ObserveSnapshotInstallDuration(logID string, d time.Duration) {
	m.workloadSnapshotInstallDur.WithLabelValues(logID).Observe(d.Seconds())
}

func (m *Prometheus) IncWriteRejected(logID string) {
	m.workloadWriteRejectedTotal.WithLabelValues(logID).Inc()
}

func (m *Prometheus) SetAckLag(logID string, lag int64) {
	if lag < 0 {
		lag = 0
	}
	m.workloadAckLag.WithLabelValues(logID).Set(float64(lag))
}
