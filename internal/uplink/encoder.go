// Package uplink encodes operator commands into the uplink wire grammar.
// Every command is one-shot: construct, validate, format, discard.
package uplink

import (
	"strings"
)

// separator is the uplink field separator; it must never appear inside an
// argument or the wire frame is corrupted.
const separator = ","

// onOff is the two-valued argument shared by CX and MEC.
var onOff = map[string]struct{}{"ON": {}, "OFF": {}}

var simArgs = map[string]struct{}{"ENABLE": {}, "ACTIVATE": {}, "DISABLE": {}}

// Encoder formats uplink command frames for the configured team. It is
// stateless and safe for concurrent use from any number of callers.
type Encoder struct {
	teamID string
}

// NewEncoder creates an Encoder bound to the configured team identifier.
func NewEncoder(teamID string) *Encoder {
	return &Encoder{teamID: teamID}
}

// Format validates a token list and returns the wire frame
// CMD,<team>,<NAME>[,<ARG>...]. Command names and keyword arguments are
// case-insensitive and normalized to upper case. On any grammar violation no
// output is produced.
func (e *Encoder) Format(tokens []string) (string, error) {
	if len(tokens) == 0 {
		return "", ErrEmptyCommand
	}
	name := strings.ToUpper(tokens[0])

	switch name {
	case "CAL":
		if len(tokens) != 1 {
			return "", &UsageError{Command: name, Usage: "CAL"}
		}
		return e.frame(name), nil

	case "CX":
		if len(tokens) != 2 {
			return "", &UsageError{Command: name, Usage: "CX ON|OFF"}
		}
		arg := strings.ToUpper(tokens[1])
		if _, ok := onOff[arg]; !ok {
			return "", &UsageError{Command: name, Usage: "CX ON|OFF"}
		}
		return e.frame(name, arg), nil

	case "ST":
		if len(tokens) != 2 {
			return "", &UsageError{Command: name, Usage: "ST hh:mm:ss | ST GPS"}
		}
		arg := strings.ToUpper(tokens[1])
		if arg == "GPS" || isClockText(arg) {
			return e.frame(name, arg), nil
		}
		return "", &UsageError{Command: name, Usage: "ST hh:mm:ss | ST GPS"}

	case "SIM":
		if len(tokens) != 2 {
			return "", &UsageError{Command: name, Usage: "SIM ENABLE|ACTIVATE|DISABLE"}
		}
		arg := strings.ToUpper(tokens[1])
		if _, ok := simArgs[arg]; !ok {
			return "", &UsageError{Command: name, Usage: "SIM ENABLE|ACTIVATE|DISABLE"}
		}
		return e.frame(name, arg), nil

	case "SIMP":
		if len(tokens) != 2 || !isAllDigits(tokens[1]) {
			return "", &UsageError{Command: name, Usage: "SIMP <pressure_pa>"}
		}
		return e.frame(name, tokens[1]), nil

	case "MEC":
		if len(tokens) != 3 {
			return "", &UsageError{Command: name, Usage: "MEC <DEVICE> <ON|OFF>"}
		}
		device := strings.ToUpper(tokens[1])
		if strings.Contains(device, separator) {
			return "", &UsageError{Command: name, Usage: "DEVICE must not contain commas"}
		}
		state := strings.ToUpper(tokens[2])
		if _, ok := onOff[state]; !ok {
			return "", &UsageError{Command: name, Usage: "MEC <DEVICE> <ON|OFF>"}
		}
		return e.frame(name, device, state), nil
	}

	return "", &UnknownCommandError{Name: name}
}

func (e *Encoder) frame(parts ...string) string {
	all := append([]string{"CMD", e.teamID}, parts...)
	return strings.Join(all, separator)
}

// isClockText reports whether s looks like hh:mm:ss, the only shape the
// flight software's clock-set command accepts.
func isClockText(s string) bool {
	return len(s) == 8 && s[2] == ':' && s[5] == ':'
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
