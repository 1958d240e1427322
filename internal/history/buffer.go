// Package history keeps a bounded, insertion-ordered window of accepted
// telemetry records for live display and replay.
package history

import (
	"fmt"
	"math"
	"time"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// DefaultCapacity bounds the buffer when the caller does not choose one.
// At the nominal 1 Hz downlink rate this holds half an hour of flight.
const DefaultCapacity = 1800

// Buffer is a FIFO window of telemetry records. Appending beyond capacity
// evicts the oldest entry. The buffer is owned by a single writer (the
// session consumer); readers get snapshots, never aliased views.
type Buffer struct {
	capacity int
	records  []telemetry.Record
}

// NewBuffer creates a buffer holding at most capacity records. A
// non-positive capacity falls back to DefaultCapacity.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		capacity: capacity,
		records:  make([]telemetry.Record, 0, capacity),
	}
}

// Append stores one record, evicting the oldest once capacity is exceeded.
func (b *Buffer) Append(rec telemetry.Record) {
	if len(b.records) == b.capacity {
		copy(b.records, b.records[1:])
		b.records[len(b.records)-1] = rec
		return
	}
	b.records = append(b.records, rec)
}

// Len returns the number of buffered records.
func (b *Buffer) Len() int { return len(b.records) }

// Latest returns the most recently appended record; ok is false while the
// buffer is empty.
func (b *Buffer) Latest() (telemetry.Record, bool) {
	if len(b.records) == 0 {
		return telemetry.Record{}, false
	}
	return b.records[len(b.records)-1], true
}

// Snapshot returns a defensive copy of the buffered records in arrival
// order, oldest first.
func (b *Buffer) Snapshot() []telemetry.Record {
	out := make([]telemetry.Record, len(b.records))
	copy(out, b.records)
	return out
}

// Series walks the buffer once and extracts a plottable series for one named
// field: receipt timestamps paired with parsed numeric values. A value that
// does not parse yields NaN rather than failing the extraction; one garbled
// sample must not blank an entire plot.
func (b *Buffer) Series(field string) ([]time.Time, []float64, error) {
	if _, ok := telemetry.FieldIndex(field); !ok {
		return nil, nil, fmt.Errorf("history: unknown field %q", field)
	}

	times := make([]time.Time, 0, len(b.records))
	values := make([]float64, 0, len(b.records))
	for _, rec := range b.records {
		v, ok := rec.Float(field)
		if !ok {
			v = math.NaN()
		}
		times = append(times, rec.ReceivedAt())
		values = append(values, v)
	}
	return times, values, nil
}
