package options

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
	"github.com/groundlink-io/groundlink/pkg/options"
)

type CommanderOptions struct {
	TeamID string `json:"team-id" mapstructure:"team-id"`

	// PressureProfile switches the commander from the interactive
	// console to streaming SIMP frames from a CSV file.
	PressureProfile string  `json:"pressure-profile" mapstructure:"pressure-profile"`
	RateHz          float64 `json:"rate-hz" mapstructure:"rate-hz"`
	EnforceRange    bool    `json:"enforce-range" mapstructure:"enforce-range"`

	UplinkOptions *options.UplinkOptions `json:"uplink" mapstructure:"uplink"`
	Log           *log.Options           `json:"log" mapstructure:"log"`
}

var _ app.CliOptions = (*CommanderOptions)(nil)

func NewCommanderOptions() *CommanderOptions {
	return &CommanderOptions{
		TeamID:        "1000",
		RateHz:        1.0,
		UplinkOptions: options.NewUplinkOptions(),
		Log:           log.NewOptions(),
	}
}

func (o *CommanderOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.TeamID, "team-id", o.TeamID, "Team identifier stamped into every command frame.")
	fs.StringVar(&o.PressureProfile, "pressure-profile", o.PressureProfile, "CSV file of pressure values to stream as SIMP commands.")
	fs.Float64Var(&o.RateHz, "rate-hz", o.RateHz, "SIMP frames per second in pressure streaming mode.")
	fs.BoolVar(&o.EnforceRange, "enforce-range", o.EnforceRange, "Drop pressure values outside the plausible atmospheric range.")

	o.UplinkOptions.AddFlags(fs)
	o.Log.AddFlags(fs)
}

func (o *CommanderOptions) Validate() []error {
	var errs []error
	if o.TeamID == "" {
		errs = append(errs, errors.New("team-id must not be empty"))
	}
	if o.RateHz <= 0 {
		errs = append(errs, errors.New("rate-hz must be positive"))
	}
	errs = append(errs, o.UplinkOptions.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return errs
}
