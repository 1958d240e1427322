package app

import (
	"context"
	"os"

	"github.com/groundlink-io/groundlink/cmd/gslink-commander/app/options"
	"github.com/groundlink-io/groundlink/internal/commander"
	"github.com/groundlink-io/groundlink/internal/simulator"
	"github.com/groundlink-io/groundlink/internal/transport"
	"github.com/groundlink-io/groundlink/internal/uplink"
	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
)

const (
	commandName = "gslink-commander"
	commandDesc = `The commander is the uplink side of the ground station. By default
it reads commands from standard input, validates them against the
command grammar and sends the encoded frames to the flight software.
With --pressure-profile it instead streams a recorded pressure
profile as SIMP commands for simulation mode.`
)

func NewApp() *app.App {
	opts := options.NewCommanderOptions()
	return app.NewApp(
		commandName,
		"Launch the ground-station command console",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithRunFunc(run(opts)),
	)
}

func run(opts *options.CommanderOptions) app.RunFunc {
	return func(ctx context.Context) error {
		log.Init(opts.Log)

		out, err := transport.DialUDP(opts.UplinkOptions.TargetAddr)
		if err != nil {
			return err
		}
		defer out.Close()

		if opts.PressureProfile != "" {
			return simulator.StreamPressure(ctx, opts.PressureProfile,
				uplink.NewEncoder(opts.TeamID), out, simulator.StreamerConfig{
					RateHz:       opts.RateHz,
					EnforceRange: opts.EnforceRange,
					Logger:       log.Std(),
				})
		}

		console := commander.NewConsole(opts.TeamID, out, os.Stdout, log.Std())
		return console.Run(ctx, os.Stdin)
	}
}
