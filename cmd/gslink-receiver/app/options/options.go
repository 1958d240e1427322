package options

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/groundlink-io/groundlink/internal/receiver"
	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
	"github.com/groundlink-io/groundlink/pkg/options"
)

type ReceiverOptions struct {
	TeamID      string `json:"team-id" mapstructure:"team-id"`
	HistorySize int    `json:"history-size" mapstructure:"history-size"`
	QueueSize   int    `json:"queue-size" mapstructure:"queue-size"`
	LogDir      string `json:"log-dir" mapstructure:"log-dir"`

	UDPOptions    *options.UDPOptions    `json:"udp" mapstructure:"udp"`
	UplinkOptions *options.UplinkOptions `json:"uplink" mapstructure:"uplink"`
	HTTPOptions   *options.HTTPOptions   `json:"http" mapstructure:"http"`
	MqttOptions   *options.MqttOptions   `json:"mqtt" mapstructure:"mqtt"`
	S3Options     *options.S3Options     `json:"s3" mapstructure:"s3"`
	Log           *log.Options           `json:"log" mapstructure:"log"`
}

var _ app.CliOptions = (*ReceiverOptions)(nil)

var errEmptyTeamID = errors.New("team-id must not be empty")

func NewReceiverOptions() *ReceiverOptions {
	return &ReceiverOptions{
		TeamID:        "1000",
		HistorySize:   1800,
		QueueSize:     64,
		LogDir:        ".",
		UDPOptions:    options.NewUDPOptions(),
		UplinkOptions: options.NewUplinkOptions(),
		HTTPOptions:   options.NewHTTPOptions(),
		MqttOptions:   options.NewMqttOptions(),
		S3Options:     options.NewS3Options(),
		Log:           log.NewOptions(),
	}
}

func (o *ReceiverOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.TeamID, "team-id", o.TeamID, "Team identifier expected on every telemetry line.")
	fs.IntVar(&o.HistorySize, "history-size", o.HistorySize, "Number of records retained in memory.")
	fs.IntVar(&o.QueueSize, "queue-size", o.QueueSize, "Raw-line queue size between receive loop and consumer.")
	fs.StringVar(&o.LogDir, "log-dir", o.LogDir, "Directory the flight log CSV is written to.")

	o.UDPOptions.AddFlags(fs)
	o.UplinkOptions.AddFlags(fs)
	o.HTTPOptions.AddFlags(fs)
	o.MqttOptions.AddFlags(fs)
	o.S3Options.AddFlags(fs)
	o.Log.AddFlags(fs)
}

func (o *ReceiverOptions) Validate() []error {
	var errs []error
	if o.TeamID == "" {
		errs = append(errs, errEmptyTeamID)
	}
	errs = append(errs, o.UDPOptions.Validate()...)
	errs = append(errs, o.UplinkOptions.Validate()...)
	errs = append(errs, o.HTTPOptions.Validate()...)
	errs = append(errs, o.MqttOptions.Validate()...)
	errs = append(errs, o.S3Options.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return errs
}

func (o *ReceiverOptions) Config() (*receiver.Config, error) {
	return &receiver.Config{
		TeamID:        o.TeamID,
		HistorySize:   o.HistorySize,
		QueueSize:     o.QueueSize,
		LogDir:        o.LogDir,
		UDPOptions:    o.UDPOptions,
		UplinkOptions: o.UplinkOptions,
		HTTPOptions:   o.HTTPOptions,
		MqttOptions:   o.MqttOptions,
		S3Options:     o.S3Options,
	}, nil
}
