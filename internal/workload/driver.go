// Package workload drives a repeatable replicated-log workload against a
// store, standing in for the consensus engine that owns one in production.
//
// One run pushes a configured number of entries through the store in
// batches and feeds the write acknowledgments back. Along the way it
// rewrites the tail at a bumped term the way a leader change would,
// delivers the acknowledgment for the replaced entries late so the store
// has to drop it, folds acknowledged prefixes into snapshots, and reads
// windows back. Verify checks the store against the invariants a run
// maintains.
package workload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"

	"github.com/avassa-io/ra"
)

//go:generate mockgen -destination=mocks_test.go -package=workload github.com/avassa-io/ra Storage

var (
	// ErrNilStore is returned when NewDriver is called without a store.
	ErrNilStore = errors.New("workload: nil store")
	// ErrNilLogger is returned when NewDriver is called without a logger.
	ErrNilLogger = errors.New("workload: nil logger")
	// ErrInvalidProfile is returned for profiles that cannot drive a run.
	ErrInvalidProfile = errors.New("workload: invalid profile")
	// ErrInconsistent is returned when the store contradicts an invariant
	// the workload maintains.
	ErrInconsistent = errors.New("workload: inconsistent store state")
)

// takeWindow is how many entries a read-back requests at once.
const takeWindow = 64

// Logger is a minimal structured logger interface, compatible with slog.Logger.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
}

// Profile shapes one workload run.
type Profile struct {
	// Entries is the total number of entries to push through the store.
	Entries int
	// PayloadBytes sizes each entry payload.
	PayloadBytes int
	// BatchSize groups entries per write; a batch of one goes through the
	// single-entry append path instead.
	BatchSize int
	// SnapshotEvery compacts the log once this many acknowledged entries
	// accumulate above the previous snapshot. Zero disables compaction.
	SnapshotEvery int
	// TakeEvery reads a window back after this many entries. Zero disables
	// read-back.
	TakeEvery int
	// OverwriteEvery rewrites the log tail at a bumped term after this many
	// batches. Zero disables tail rewrites.
	OverwriteEvery int
	// TermEvery bumps the persisted term after this many batches without
	// rewriting anything. Zero keeps the term fixed.
	TermEvery int
	// Interval paces batches; zero runs unpaced.
	Interval time.Duration
}

func (p Profile) validate() error {
	if p.Entries <= 0 {
		return fmt.Errorf("%w: entries must be positive, got %d", ErrInvalidProfile, p.Entries)
	}
	if p.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrInvalidProfile, p.BatchSize)
	}
	if p.PayloadBytes < 0 {
		return fmt.Errorf("%w: payload bytes must not be negative, got %d", ErrInvalidProfile, p.PayloadBytes)
	}
	if p.SnapshotEvery < 0 || p.TakeEvery < 0 || p.OverwriteEvery < 0 || p.TermEvery < 0 {
		return fmt.Errorf("%w: cadence fields must not be negative", ErrInvalidProfile)
	}
	if p.Interval < 0 {
		return fmt.Errorf("%w: interval must not be negative, got %v", ErrInvalidProfile, p.Interval)
	}
	return nil
}

// Result summarizes one workload run.
type Result struct {
	Entries    int
	Batches    int
	Overwrites int
	StaleAcks  int
	Snapshots  int
	Reads      int

	FinalTerm   int64
	LastIndex   int64
	LastWritten int64
	Elapsed     time.Duration
}

// Driver runs workload profiles against a single log store.
type Driver struct {
	store   ra.Storage
	profile Profile
	id      string
	logger  Logger
	tracer  oteltrace.Tracer
	metrics Metrics

	newTicker tickerFactory
}

// NewDriver creates a driver for the given store. A nil metrics sink is
// replaced with a no-op implementation.
func NewDriver(store ra.Storage, profile Profile, id string, logger Logger, tracer oteltrace.Tracer, metrics Metrics) (*Driver, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	if logger == nil {
		return nil, ErrNilLogger
	}
	if err := profile.validate(); err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &Driver{
		store:     store,
		profile:   profile,
		id:        id,
		logger:    logger,
		tracer:    tracer,
		metrics:   metrics,
		newTicker: defaultTickerFactory,
	}, nil
}

// Run executes the profile until the configured number of entries has gone
// through the store, or ctx is canceled. The term is resumed from store
// metadata, so a run picks up where a previous one on the same store left
// off.
func (d *Driver) Run(ctx context.Context) (Result, error) {
	ctx, span := d.startSpan(ctx, "workload.Run",
		attribute.Int("workload.entries", d.profile.Entries),
		attribute.Int("workload.batch_size", d.profile.BatchSize),
	)
	defer span.End()

	begin := time.Now()
	res := Result{}

	term := int64(1)
	if v, ok := d.store.ReadMetaUint64(ra.MetaCurrentTerm); ok && v > 0 {
		term = int64(v)
	}
	if err := d.store.WriteMetaUint64(ra.MetaCurrentTerm, uint64(term)); err != nil {
		spanRecordError(span, err)
		return res, err
	}

	var tick workTicker
	if d.profile.Interval > 0 {
		tick = d.newTicker(d.profile.Interval)
		defer tick.Stop()
	}

	d.logger.Info("workload starting",
		"log_id", d.id,
		"entries", d.profile.Entries,
		"batch_size", d.profile.BatchSize,
		"term", term,
	)

	sinceRead := 0
	for res.Entries < d.profile.Entries {
		if tick != nil {
			select {
			case <-ctx.Done():
				spanRecordError(span, ctx.Err())
				return res, ctx.Err()
			case <-tick.C():
			}
		} else if err := ctx.Err(); err != nil {
			spanRecordError(span, err)
			return res, err
		}

		res.Batches++

		// A due rewrite precedes the iteration's batch; every iteration
		// appends.
		if d.profile.OverwriteEvery > 0 && res.Batches%d.profile.OverwriteEvery == 0 && d.store.NextIndex() > 1 {
			var err error
			if term, err = d.rewriteTail(ctx, term, &res); err != nil {
				spanRecordError(span, err)
				return res, err
			}
		}

		if d.profile.TermEvery > 0 && res.Batches%d.profile.TermEvery == 0 {
			term++
			if err := d.store.WriteMetaUint64(ra.MetaCurrentTerm, uint64(term)); err != nil {
				spanRecordError(span, err)
				return res, err
			}
		}

		n := d.profile.BatchSize
		if remaining := d.profile.Entries - res.Entries; n > remaining {
			n = remaining
		}
		ev, err := d.writeBatch(ctx, term, n)
		if err != nil {
			spanRecordError(span, err)
			return res, err
		}
		d.store.HandleEvent(ev)
		res.Entries += n
		sinceRead += n

		lastIdx := d.store.NextIndex() - 1
		writtenIdx, _ := d.store.LastWritten()
		d.metrics.SetAckLag(d.id, lastIdx-writtenIdx)

		if d.profile.TakeEvery > 0 && sinceRead >= d.profile.TakeEvery {
			sinceRead = 0
			if err := d.readWindow(ctx, &res); err != nil {
				spanRecordError(span, err)
				return res, err
			}
		}
		if d.profile.SnapshotEvery > 0 {
			d.maybeCompact(ctx, &res)
		}
	}

	res.FinalTerm = term
	res.LastIndex = d.store.NextIndex() - 1
	res.LastWritten, _ = d.store.LastWritten()
	res.Elapsed = time.Since(begin)

	d.logger.Info("workload complete",
		"log_id", d.id,
		"entries", res.Entries,
		"batches", res.Batches,
		"overwrites", res.Overwrites,
		"snapshots", res.Snapshots,
		"elapsed", res.Elapsed,
	)
	span.SetAttributes(
		attribute.Int("workload.batches", res.Batches),
		attribute.Int64("ra.log.index", res.LastIndex),
	)
	return res, nil
}

// writeBatch puts n entries into the store at its next index and returns the
// acknowledgment for the last of them.
func (d *Driver) writeBatch(ctx context.Context, term int64, n int) (ra.WrittenEvent, error) {
	next := d.store.NextIndex()

	_, span := d.startSpan(ctx, "workload.writeBatch",
		attribute.Int64("ra.log.index", next),
		attribute.Int("ra.entries_count", n),
	)
	defer span.End()

	if n == 1 {
		start := time.Now()
		ev := d.store.Append(d.makeEntry(next, term))
		d.metrics.ObserveAppendDuration(d.id, time.Since(start))
		return ev, nil
	}

	start := time.Now()
	ev, err := d.store.Write(d.makeBatch(next, n, term))
	if err != nil {
		d.metrics.IncWriteRejected(d.id)
		spanRecordError(span, err)
		return ra.WrittenEvent{}, err
	}
	d.metrics.ObserveWriteDuration(d.id, time.Since(start))
	return ev, nil
}

// makeEntry builds the entry for index with a payload of the configured
// size. A zero payload size carries no data at all.
func (d *Driver) makeEntry(index, term int64) ra.LogEntry {
	var data []byte
	if d.profile.PayloadBytes > 0 {
		data = make([]byte, d.profile.PayloadBytes)
		for i := range data {
			data[i] = byte(index + int64(i))
		}
	}
	return ra.LogEntry{Index: index, Term: term, Type: ra.EntryCommand, Data: data}
}

func (d *Driver) makeBatch(from int64, n int, term int64) []ra.LogEntry {
	entries := make([]ra.LogEntry, n)
	for i := range entries {
		entries[i] = d.makeEntry(from+int64(i), term)
	}
	return entries
}

// rewriteTail replays a leader change: the tail of the log is rewritten at a
// bumped term, and the acknowledgment for the replaced entries is delivered
// only after the rewrite, so the store has to drop it as stale.
func (d *Driver) rewriteTail(ctx context.Context, term int64, res *Result) (int64, error) {
	lastIdx := d.store.NextIndex() - 1
	from := lastIdx - int64(d.profile.BatchSize) + 1
	if snapIdx, _, ok := d.store.SnapshotIndexTerm(); ok && from <= snapIdx {
		from = snapIdx + 1
	}
	if from < 1 {
		from = 1
	}
	staleTerm, ok := d.store.FetchTerm(lastIdx)
	if !ok || from > lastIdx {
		// The tail is compacted away; nothing left to rewrite.
		return term, nil
	}

	_, span := d.startSpan(ctx, "workload.rewriteTail",
		attribute.Int64("ra.from_index", from),
		attribute.Int64("ra.log.index", lastIdx),
	)
	defer span.End()

	// The acknowledgment the replaced entries would have produced.
	stale := ra.WrittenEvent{Origin: d.id, Index: lastIdx, Term: staleTerm}

	term++
	if err := d.store.WriteMetaUint64(ra.MetaCurrentTerm, uint64(term)); err != nil {
		spanRecordError(span, err)
		return term, err
	}

	start := time.Now()
	ev, err := d.store.Write(d.makeBatch(from, int(lastIdx-from+1), term))
	if err != nil {
		d.metrics.IncWriteRejected(d.id)
		spanRecordError(span, err)
		return term, err
	}
	d.metrics.ObserveWriteDuration(d.id, time.Since(start))

	d.store.HandleEvent(stale)
	res.StaleAcks++
	d.store.HandleEvent(ev)
	res.Overwrites++

	d.logger.Debug("rewrote log tail",
		"log_id", d.id,
		"from_index", from,
		"to_index", lastIdx,
		"term", term,
	)
	return term, nil
}

// maybeCompact folds the acknowledged prefix into a snapshot once enough
// acknowledged entries accumulate above the previous boundary.
func (d *Driver) maybeCompact(ctx context.Context, res *Result) {
	writtenIdx, writtenTerm := d.store.LastWritten()
	snapIdx, _, _ := d.store.SnapshotIndexTerm()
	if writtenIdx-snapIdx < int64(d.profile.SnapshotEvery) {
		return
	}

	_, span := d.startSpan(ctx, "workload.compact",
		attribute.Int64("ra.snapshot.index", writtenIdx),
		attribute.Int64("ra.snapshot.term", writtenTerm),
	)
	defer span.End()

	state := []byte(fmt.Sprintf("compacted through %d", writtenIdx))
	cfg := ra.ClusterConfig{Members: []string{d.id}}

	start := time.Now()
	d.store.InstallSnapshot(ra.Snapshot{
		LastIncludedIndex: writtenIdx,
		LastIncludedTerm:  writtenTerm,
		Config:            cfg,
		Data:              state,
	})
	d.metrics.ObserveSnapshotInstallDuration(d.id, time.Since(start))
	d.store.UpdateReleaseCursor(writtenIdx, cfg, state)
	res.Snapshots++

	d.logger.Debug("compacted log",
		"log_id", d.id,
		"snapshot_index", writtenIdx,
		"snapshot_term", writtenTerm,
	)
}

// readWindow reads the most recent window of entries back and checks that
// what came back is contiguous.
func (d *Driver) readWindow(ctx context.Context, res *Result) error {
	lastIdx := d.store.NextIndex() - 1
	from := lastIdx - takeWindow + 1
	if from < 1 {
		from = 1
	}

	_, span := d.startSpan(ctx, "workload.readWindow",
		attribute.Int64("ra.from_index", from),
	)
	defer span.End()

	start := time.Now()
	entries := d.store.Take(from, takeWindow)
	d.metrics.ObserveTakeDuration(d.id, time.Since(start))
	span.SetAttributes(attribute.Int("ra.entries_count", len(entries)))
	res.Reads++

	for i := 1; i < len(entries); i++ {
		if entries[i].Index != entries[i-1].Index+1 {
			err := fmt.Errorf("%w: read window jumps from %d to %d",
				ErrInconsistent, entries[i-1].Index, entries[i].Index)
			spanRecordError(span, err)
			return err
		}
	}
	return nil
}

// Verify checks the store against the invariants a clean run maintains: a
// contiguous entry run with non-decreasing terms, an acknowledgment cursor
// on the last entry, and a snapshot boundary directly below the first stored
// entry.
func (d *Driver) Verify() error {
	entries := d.store.AllEntries()
	for i := 1; i < len(entries); i++ {
		if entries[i].Index != entries[i-1].Index+1 {
			return fmt.Errorf("%w: gap between entries %d and %d",
				ErrInconsistent, entries[i-1].Index, entries[i].Index)
		}
		if entries[i].Term < entries[i-1].Term {
			return fmt.Errorf("%w: term regressed at entry %d", ErrInconsistent, entries[i].Index)
		}
	}

	lastIdx := d.store.NextIndex() - 1
	if n := len(entries); n > 0 && entries[n-1].Index != lastIdx {
		return fmt.Errorf("%w: last entry %d does not match last index %d",
			ErrInconsistent, entries[n-1].Index, lastIdx)
	}

	writtenIdx, writtenTerm := d.store.LastWritten()
	if writtenIdx != lastIdx {
		return fmt.Errorf("%w: acknowledgment cursor %d does not match last index %d",
			ErrInconsistent, writtenIdx, lastIdx)
	}
	if term, ok := d.store.FetchTerm(writtenIdx); ok && term != writtenTerm {
		return fmt.Errorf("%w: cursor term %d does not match entry term %d",
			ErrInconsistent, writtenTerm, term)
	}

	if snapIdx, _, ok := d.store.SnapshotIndexTerm(); ok && len(entries) > 0 && entries[0].Index != snapIdx+1 {
		return fmt.Errorf("%w: first entry %d does not adjoin snapshot boundary %d",
			ErrInconsistent, entries[0].Index, snapIdx)
	}
	return nil
}
