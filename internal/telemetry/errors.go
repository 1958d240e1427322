package telemetry

import (
	"errors"
	"fmt"
)

// rawPreviewLimit bounds how much of a rejected line is carried around for
// logging and display.
const rawPreviewLimit = 80

// Rejection reasons, used as log fields and metric labels.
const (
	ReasonFieldCount   = "field_count"
	ReasonTeamMismatch = "team_mismatch"
	ReasonBadMode      = "bad_mode"
	ReasonBadState     = "bad_state"
	ReasonBadSequence  = "bad_sequence"
)

// FieldCountError reports a line with fewer comma-separated fields than the
// schema requires.
type FieldCountError struct {
	Have int
	Want int
}

func (e *FieldCountError) Error() string {
	return fmt.Sprintf("too few fields: %d < %d", e.Have, e.Want)
}

// TeamMismatchError reports a packet carrying a foreign team identifier,
// usually cross-talk from another sender on the same channel.
type TeamMismatchError struct {
	Got      string
	Expected string
}

func (e *TeamMismatchError) Error() string {
	return fmt.Sprintf("wrong TEAM_ID %q != %q", e.Got, e.Expected)
}

// InvalidModeError reports a MODE field outside the allowed mode set.
type InvalidModeError struct {
	Got string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("bad MODE %q", e.Got)
}

// InvalidStateError reports a STATE field outside the flight-state set.
type InvalidStateError struct {
	Got string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("bad STATE %q", e.Got)
}

// SequenceFieldError reports a PACKET_COUNT field that is not a non-negative
// integer.
type SequenceFieldError struct {
	Got string
}

func (e *SequenceFieldError) Error() string {
	return fmt.Sprintf("PACKET_COUNT not a non-negative integer: %q", e.Got)
}

// ValidationError wraps a tagged rejection reason together with a truncated
// preview of the offending raw line. A rejected line is never retried.
type ValidationError struct {
	Raw string
	Err error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("telemetry: %v :: %q", e.Err, e.Raw)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func newValidationError(raw string, err error) *ValidationError {
	if len(raw) > rawPreviewLimit {
		raw = raw[:rawPreviewLimit]
	}
	return &ValidationError{Raw: raw, Err: err}
}

// RejectReason maps a decode error to its stable reason tag. Unrecognized
// errors map to "unknown".
func RejectReason(err error) string {
	var (
		fieldCount *FieldCountError
		team       *TeamMismatchError
		mode       *InvalidModeError
		state      *InvalidStateError
		seq        *SequenceFieldError
	)
	switch {
	case errors.As(err, &fieldCount):
		return ReasonFieldCount
	case errors.As(err, &team):
		return ReasonTeamMismatch
	case errors.As(err, &mode):
		return ReasonBadMode
	case errors.As(err, &state):
		return ReasonBadState
	case errors.As(err, &seq):
		return ReasonBadSequence
	default:
		return "unknown"
	}
}
