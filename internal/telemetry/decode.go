package telemetry

import (
	"strconv"
	"strings"
)

// Separator is the wire field separator.
const Separator = ','

// asciiPlaceholder substitutes any non-ASCII byte during decoding. The radio
// link is best-effort; byte-level noise must never reject a whole line on its
// own.
const asciiPlaceholder = '?'

// Decoder turns raw downlink lines into validated Records. It is stateless
// and safe for concurrent use.
type Decoder struct {
	teamID string
}

// NewDecoder creates a Decoder bound to the configured team identifier.
func NewDecoder(teamID string) *Decoder {
	return &Decoder{teamID: teamID}
}

// Decode validates a single raw line and returns the typed record. On any
// failed check it returns a *ValidationError wrapping the tagged reason; the
// caller logs and discards, there is no partial success.
func (d *Decoder) Decode(line []byte) (Record, error) {
	raw := sanitizeASCII(line)
	trimmed := strings.TrimRight(raw, " \t\r\n")
	fields := strings.Split(trimmed, string(Separator))

	if len(fields) < len(fieldNames) {
		return Record{}, newValidationError(raw, &FieldCountError{Have: len(fields), Want: len(fieldNames)})
	}

	team := strings.TrimSpace(fields[fieldIndex[FieldTeamID]])
	if team != d.teamID {
		return Record{}, newValidationError(raw, &TeamMismatchError{Got: team, Expected: d.teamID})
	}

	mode := strings.TrimSpace(fields[fieldIndex[FieldMode]])
	if !ValidMode(mode) {
		return Record{}, newValidationError(raw, &InvalidModeError{Got: mode})
	}

	state := strings.TrimSpace(fields[fieldIndex[FieldState]])
	if !ValidState(state) {
		return Record{}, newValidationError(raw, &InvalidStateError{Got: state})
	}

	seqText := strings.TrimSpace(fields[fieldIndex[FieldPacketCount]])
	seq, err := strconv.ParseInt(seqText, 10, 64)
	if err != nil || seq < 0 {
		return Record{}, newValidationError(raw, &SequenceFieldError{Got: seqText})
	}

	// Keep only the required columns; optional trailing fields are reserved
	// for future extensions and ignored here.
	return newRecord(fields[:len(fieldNames)], seq), nil
}

func sanitizeASCII(line []byte) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, c := range line {
		if c > 0x7f {
			b.WriteByte(asciiPlaceholder)
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
