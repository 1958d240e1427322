package options

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/groundlink-io/groundlink/internal/telemetry"
	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
)

type SimulatorOptions struct {
	TeamID string `json:"team-id" mapstructure:"team-id"`
	// TargetAddr is the receiver's telemetry listen address.
	TargetAddr string `json:"target-addr" mapstructure:"target-addr"`
	// Mode is the MODE field stamped on every frame, F or S.
	Mode string `json:"mode" mapstructure:"mode"`
	// Interval is the pause between frames. One second matches the
	// transmitter's nominal rate.
	Interval time.Duration `json:"interval" mapstructure:"interval"`
	// Count stops the simulator after that many frames. Zero runs
	// until interrupted.
	Count int `json:"count" mapstructure:"count"`

	Log *log.Options `json:"log" mapstructure:"log"`
}

var _ app.CliOptions = (*SimulatorOptions)(nil)

func NewSimulatorOptions() *SimulatorOptions {
	return &SimulatorOptions{
		TeamID:     "1000",
		TargetAddr: "127.0.0.1:9000",
		Mode:       telemetry.ModeSimulation,
		Interval:   time.Second,
		Log:        log.NewOptions(),
	}
}

func (o *SimulatorOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.TeamID, "team-id", o.TeamID, "Team identifier stamped on every frame.")
	fs.StringVar(&o.TargetAddr, "target-addr", o.TargetAddr, "Receiver telemetry address to send frames to.")
	fs.StringVar(&o.Mode, "mode", o.Mode, "MODE field value, F for flight or S for simulation.")
	fs.DurationVar(&o.Interval, "interval", o.Interval, "Pause between frames.")
	fs.IntVar(&o.Count, "count", o.Count, "Stop after this many frames, 0 for unlimited.")

	o.Log.AddFlags(fs)
}

func (o *SimulatorOptions) Validate() []error {
	var errs []error
	if o.TeamID == "" {
		errs = append(errs, errors.New("team-id must not be empty"))
	}
	if !telemetry.ValidMode(o.Mode) {
		errs = append(errs, fmt.Errorf("mode %q is not F or S", o.Mode))
	}
	if o.Interval <= 0 {
		errs = append(errs, errors.New("interval must be positive"))
	}
	errs = append(errs, o.Log.Validate()...)
	return errs
}
