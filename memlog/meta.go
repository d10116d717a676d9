package memlog

import (
	"encoding/binary"

	"github.com/avassa-io/ra"
)

// ReadMeta returns the metadata value stored under key, if present. A
// missing key is a valid outcome, not an error.
func (l *Log) ReadMeta(key ra.MetaKey) ([]byte, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.meta[key]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), v...), true
}

// WriteMeta stores value under key, overwriting any previous value. The
// error return exists for durable siblings; this variant always succeeds.
func (l *Log) WriteMeta(key ra.MetaKey, value []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.meta[key] = append([]byte(nil), value...)
	l.metrics.IncMetaWrite(l.id, string(key))
	return nil
}

// ReadMetaUint64 reads a metadata value written by WriteMetaUint64. ok is
// false for a missing key or a value of the wrong width.
func (l *Log) ReadMetaUint64(key ra.MetaKey) (uint64, bool) {
	v, ok := l.ReadMeta(key)
	if !ok || len(v) != 8 {
		return 0, false
	}
	return binary.BigEndian.Uint64(v), true
}

// WriteMetaUint64 stores value under key as 8 big-endian bytes.
func (l *Log) WriteMetaUint64(key ra.MetaKey, value uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, value)
	return l.WriteMeta(key, buf)
}

// SyncMeta is a no-op: nothing is buffered in memory.
func (l *Log) SyncMeta() error {
	return nil
}
