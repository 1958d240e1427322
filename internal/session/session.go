package session

import (
	"sync"
	"time"

	"github.com/groundlink-io/groundlink/internal/history"
	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// Config carries the knobs for a telemetry session.
type Config struct {
	// TeamID is the expected value of the first field on every line.
	TeamID string
	// HistorySize bounds the in-memory record buffer. Zero or negative
	// falls back to history.DefaultCapacity.
	HistorySize int
}

// Stats is a point-in-time snapshot of the session counters.
type Stats struct {
	Accepted int64
	Rejected int64
	Lost     int64

	// LastSeq is the packet count of the most recent accepted record.
	// Only meaningful when Accepted > 0.
	LastSeq        int64
	LastReceivedAt time.Time
}

// Session owns the validated telemetry state for one ground-station run:
// the decoder, the sequence tracker and the bounded history buffer.
// Accept is intended for a single writer; the read accessors are safe
// to call concurrently with it.
type Session struct {
	decoder *telemetry.Decoder

	mu      sync.RWMutex
	tracker *telemetry.SequenceTracker
	buffer  *history.Buffer
	stats   Stats
}

func New(cfg Config) *Session {
	return &Session{
		decoder: telemetry.NewDecoder(cfg.TeamID),
		tracker: &telemetry.SequenceTracker{},
		buffer:  history.NewBuffer(cfg.HistorySize),
	}
}

// Accept validates one raw line and, on success, folds the record into
// the tracker and the history buffer. It returns the record and the
// estimated loss since the previous record. On failure the session
// state is untouched apart from the rejected counter.
func (s *Session) Accept(raw []byte) (telemetry.Record, int64, error) {
	rec, err := s.decoder.Decode(raw)
	if err != nil {
		s.mu.Lock()
		s.stats.Rejected++
		s.mu.Unlock()
		return telemetry.Record{}, 0, err
	}
	rec = rec.WithReceivedAt(time.Now())

	s.mu.Lock()
	lost := s.tracker.Observe(rec.Seq())
	s.buffer.Append(rec)
	s.stats.Accepted++
	s.stats.Lost += lost
	s.stats.LastSeq = rec.Seq()
	s.stats.LastReceivedAt = rec.ReceivedAt()
	s.mu.Unlock()

	return rec, lost, nil
}

// Latest returns the most recent accepted record.
func (s *Session) Latest() (telemetry.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buffer.Latest()
}

// Snapshot returns a copy of the retained records, oldest first.
func (s *Session) Snapshot() []telemetry.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buffer.Snapshot()
}

// Series extracts one numeric field across the retained records.
func (s *Session) Series(field string) ([]time.Time, []float64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.buffer.Series(field)
}

// Stats returns the current session counters.
func (s *Session) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}
