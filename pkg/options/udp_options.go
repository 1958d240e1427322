package options

import (
	"errors"
	"time"

	"github.com/spf13/pflag"
)

var _ IOptions = (*UDPOptions)(nil)

// UDPOptions configures the downlink datagram listener.
type UDPOptions struct {
	// ListenAddr is the host:port the telemetry receiver binds to.
	ListenAddr string `json:"listen-addr" mapstructure:"listen-addr"`

	// ReadTimeout bounds each blocking receive so the loop can notice
	// cancellation and link silence. One datagram arrives per second in
	// nominal flight, so one second is a natural tick.
	ReadTimeout time.Duration `json:"read-timeout" mapstructure:"read-timeout"`

	// LivenessWindow is how long the link may stay silent before the
	// receiver raises an advisory warning. Never fatal.
	LivenessWindow time.Duration `json:"liveness-window" mapstructure:"liveness-window"`
}

// NewUDPOptions creates UDPOptions with local-testing defaults.
func NewUDPOptions() *UDPOptions {
	return &UDPOptions{
		ListenAddr:     "127.0.0.1:9000",
		ReadTimeout:    1 * time.Second,
		LivenessWindow: 2500 * time.Millisecond,
	}
}

// Validate is used to parse and validate the parameters entered by the user
// at the command line when the program starts.
func (o *UDPOptions) Validate() []error {
	if o == nil {
		return nil
	}

	errs := []error{}

	if err := ValidateAddress(o.ListenAddr); err != nil {
		errs = append(errs, err)
	}
	if o.ReadTimeout <= 0 {
		errs = append(errs, errors.New("udp.read-timeout must be positive"))
	}
	if o.LivenessWindow < o.ReadTimeout {
		errs = append(errs, errors.New("udp.liveness-window must not be shorter than udp.read-timeout"))
	}

	return errs
}

// AddFlags adds flags for UDPOptions to the specified FlagSet.
func (o *UDPOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ListenAddr, "udp.listen-addr", o.ListenAddr, "The UDP address the telemetry receiver listens on.")
	fs.DurationVar(&o.ReadTimeout, "udp.read-timeout", o.ReadTimeout, "Per-receive deadline; also the cancellation check interval.")
	fs.DurationVar(&o.LivenessWindow, "udp.liveness-window", o.LivenessWindow, "Silence on the link longer than this raises a warning.")
}

var _ IOptions = (*UplinkOptions)(nil)

// UplinkOptions configures the command uplink sender.
type UplinkOptions struct {
	// TargetAddr is the host:port command frames are sent to.
	TargetAddr string `json:"target-addr" mapstructure:"target-addr"`
}

// NewUplinkOptions creates UplinkOptions with local-testing defaults.
func NewUplinkOptions() *UplinkOptions {
	return &UplinkOptions{
		TargetAddr: "127.0.0.1:9001",
	}
}

func (o *UplinkOptions) Validate() []error {
	if o == nil {
		return nil
	}

	errs := []error{}

	if err := ValidateAddress(o.TargetAddr); err != nil {
		errs = append(errs, err)
	}

	return errs
}

// AddFlags adds flags for UplinkOptions to the specified FlagSet.
func (o *UplinkOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.TargetAddr, "uplink.target-addr", o.TargetAddr, "The UDP address command frames are sent to.")
}
