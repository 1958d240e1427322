package uplink

import (
	"errors"
	"fmt"
)

// ErrEmptyCommand is returned for an empty token list.
var ErrEmptyCommand = errors.New("uplink: empty command")

// UnknownCommandError reports a command name outside the uplink grammar.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("uplink: unknown command %q", e.Name)
}

// UsageError reports a token list that names a known command but violates its
// argument grammar. Usage carries the expected shape for the operator.
type UsageError struct {
	Command string
	Usage   string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("uplink: %s: usage: %s", e.Command, e.Usage)
}
