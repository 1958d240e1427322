// Package options holds per-concern configuration blocks shared by the
// groundlink binaries. Every block knows how to register its flags and to
// validate itself; assembling blocks into a command is pkg/app's job.
package options

import (
	"fmt"
	"net"

	"github.com/spf13/pflag"
)

// IOptions is implemented by every configuration block.
type IOptions interface {
	// Validate checks the user-supplied values, returning one error per
	// violation so they can be aggregated and reported together.
	Validate() []error

	// AddFlags registers the block's command-line flags.
	AddFlags(fs *pflag.FlagSet)
}

// ValidateAddress checks that addr is a host:port pair.
func ValidateAddress(addr string) error {
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("invalid address %q: %w", addr, err)
	}
	return nil
}
