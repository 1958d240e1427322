package options

import (
	"time"

	"github.com/spf13/pflag"
)

var _ IOptions = (*HTTPOptions)(nil)

// HTTPOptions configures the receiver's health/metrics/display HTTP server.
type HTTPOptions struct {
	// Addr is the server bind address.
	Addr string `json:"addr" mapstructure:"addr"`

	// Timeout bounds server read/write per request.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`
}

// NewHTTPOptions creates HTTPOptions with default parameters.
func NewHTTPOptions() *HTTPOptions {
	return &HTTPOptions{
		Addr:    "127.0.0.1:8080",
		Timeout: 30 * time.Second,
	}
}

// Validate is used to parse and validate the parameters entered by the user
// at the command line when the program starts.
func (o *HTTPOptions) Validate() []error {
	if o == nil {
		return nil
	}

	errs := []error{}

	if err := ValidateAddress(o.Addr); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// AddFlags adds flags for HTTPOptions to the specified FlagSet.
func (o *HTTPOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Addr, "http.addr", o.Addr, "Specify the HTTP server bind address and port.")
	fs.DurationVar(&o.Timeout, "http.timeout", o.Timeout, "Timeout for server connections.")
}
