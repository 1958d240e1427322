package app

import (
	"context"
	"time"

	"github.com/groundlink-io/groundlink/cmd/gslink-simulator/app/options"
	"github.com/groundlink-io/groundlink/internal/simulator"
	"github.com/groundlink-io/groundlink/internal/transport"
	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
)

const (
	commandName = "gslink-simulator"
	commandDesc = `The simulator sends schema-correct telemetry frames to a receiver
without a probe on the bench, walking a scripted flight from the
launch pad to touchdown.`
)

func NewApp() *app.App {
	opts := options.NewSimulatorOptions()
	return app.NewApp(
		commandName,
		"Launch the telemetry simulator",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithRunFunc(run(opts)),
	)
}

func run(opts *options.SimulatorOptions) app.RunFunc {
	return func(ctx context.Context) error {
		log.Init(opts.Log)
		logger := log.WithName("simulator")

		out, err := transport.DialUDP(opts.TargetAddr)
		if err != nil {
			return err
		}
		defer out.Close()
		logger.Info("sending telemetry", "target", opts.TargetAddr, "interval", opts.Interval)

		profile := simulator.NewProfile(opts.Mode)
		ticker := time.NewTicker(opts.Interval)
		defer ticker.Stop()

		for sent := 0; opts.Count == 0 || sent < opts.Count; sent++ {
			frame := profile.Next()
			line := simulator.EncodeFrame(opts.TeamID, frame)
			if err := out.SendLine(line); err != nil {
				return err
			}
			logger.Debug("sent frame", "seq", frame.PacketCount, "state", frame.State)

			select {
			case <-ticker.C:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	}
}
