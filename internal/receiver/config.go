package receiver

import (
	"github.com/groundlink-io/groundlink/pkg/options"
)

// Config collects everything the receiver needs for one run.
type Config struct {
	// TeamID is the expected value of the first telemetry field.
	TeamID string
	// HistorySize bounds the in-memory record buffer.
	HistorySize int
	// QueueSize bounds the raw-line queue inside the pipeline.
	QueueSize int
	// LogDir is where the flight log CSV is written.
	LogDir string

	UDPOptions    *options.UDPOptions
	UplinkOptions *options.UplinkOptions
	HTTPOptions   *options.HTTPOptions
	MqttOptions   *options.MqttOptions
	S3Options     *options.S3Options
}
