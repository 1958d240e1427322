package telemetry

import (
	"strconv"
	"strings"
	"time"
)

// Record is a single accepted telemetry packet. Field values are kept as the
// verbatim wire text so that the persisted CSV reproduces exactly what the
// vehicle sent; numeric conversion happens only when a consumer asks for it.
//
// A Record is immutable once constructed.
type Record struct {
	fields     []string
	seq        int64
	receivedAt time.Time
}

func newRecord(fields []string, seq int64) Record {
	owned := make([]string, len(fields))
	copy(owned, fields)
	return Record{fields: owned, seq: seq}
}

// Seq returns the parsed packet-count field.
func (r Record) Seq() int64 { return r.seq }

// ReceivedAt returns the ground-station receipt timestamp.
func (r Record) ReceivedAt() time.Time { return r.receivedAt }

// Field returns the verbatim value of a named field.
func (r Record) Field(name string) (string, bool) {
	i, ok := fieldIndex[name]
	if !ok || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// Float parses a named field as a float64. The bool result is false when the
// field is unknown or its text is not numeric.
func (r Record) Float(name string) (float64, bool) {
	s, ok := r.Field(name)
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Fields returns a copy of the field values in wire order.
func (r Record) Fields() []string {
	out := make([]string, len(r.fields))
	copy(out, r.fields)
	return out
}

// State returns the STATE field value.
func (r Record) State() string {
	s, _ := r.Field(FieldState)
	return s
}

// Mode returns the MODE field value.
func (r Record) Mode() string {
	m, _ := r.Field(FieldMode)
	return m
}

// Line rebuilds the wire form of the record, without a trailing newline.
func (r Record) Line() string {
	return strings.Join(r.fields, string(Separator))
}

// WithReceivedAt returns a copy of the record stamped with the given receipt
// time. Called exactly once, by the session acceptance path.
func (r Record) WithReceivedAt(t time.Time) Record {
	r.receivedAt = t
	return r
}
