package session

import (
	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// EventType classifies what the pipeline observed on the downlink.
type EventType int

const (
	// EventRecord carries a validated telemetry record.
	EventRecord EventType = iota
	// EventReject reports a line that failed validation.
	EventReject
	// EventStale fires when the liveness window elapses with no traffic.
	EventStale
)

// Event is a single pipeline observation delivered to the consumer.
type Event struct {
	Type EventType

	// Record is set for EventRecord.
	Record telemetry.Record
	// LossDelta is the estimated packets lost between this record and
	// the previous one. Set for EventRecord.
	LossDelta int64

	// Err is set for EventReject.
	Err error
}
