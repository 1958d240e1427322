package options

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
)

type ReplayOptions struct {
	TeamID string `json:"team-id" mapstructure:"team-id"`
	// Path is the flight log CSV to replay.
	Path        string `json:"path" mapstructure:"path"`
	HistorySize int    `json:"history-size" mapstructure:"history-size"`
	// Follow keeps reading as the log grows, for watching a live run.
	Follow bool `json:"follow" mapstructure:"follow"`

	Log *log.Options `json:"log" mapstructure:"log"`
}

var _ app.CliOptions = (*ReplayOptions)(nil)

func NewReplayOptions() *ReplayOptions {
	return &ReplayOptions{
		TeamID:      "1000",
		HistorySize: 1800,
		Log:         log.NewOptions(),
	}
}

func (o *ReplayOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.TeamID, "team-id", o.TeamID, "Team identifier the recording is validated against.")
	fs.StringVar(&o.Path, "path", o.Path, "Flight log CSV to replay.")
	fs.IntVar(&o.HistorySize, "history-size", o.HistorySize, "Number of records retained in memory.")
	fs.BoolVar(&o.Follow, "follow", o.Follow, "Keep reading as the log grows.")

	o.Log.AddFlags(fs)
}

func (o *ReplayOptions) Validate() []error {
	var errs []error
	if o.TeamID == "" {
		errs = append(errs, errors.New("team-id must not be empty"))
	}
	if o.Path == "" {
		errs = append(errs, errors.New("path must be set"))
	}
	errs = append(errs, o.Log.Validate()...)
	return errs
}
