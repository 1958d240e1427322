package telemetry

// SequenceTracker estimates downlink loss from forward gaps in the packet
// counter. It deliberately treats duplicates and counter regressions as "no
// loss, rebase": restart detection is out of scope, the tracker estimates
// loss, it does not recover it.
//
// Single-writer discipline: only the session acceptance path may call
// Observe, in arrival order.
type SequenceTracker struct {
	last int64
	seen bool
	lost int64
}

// Observe records one accepted sequence number and returns the loss delta it
// implies: seq - last - 1 for a forward gap, zero otherwise. The observed
// value always becomes the new baseline.
func (t *SequenceTracker) Observe(seq int64) int64 {
	if !t.seen {
		t.seen = true
		t.last = seq
		return 0
	}

	var delta int64
	if seq > t.last+1 {
		delta = seq - t.last - 1
		t.lost += delta
	}
	t.last = seq
	return delta
}

// Lost returns the cumulative estimated loss.
func (t *SequenceTracker) Lost() int64 { return t.lost }

// Last returns the last observed sequence number; ok is false before the
// first observation.
func (t *SequenceTracker) Last() (seq int64, ok bool) {
	return t.last, t.seen
}
