package app

import (
	"context"
	"os"

	"github.com/groundlink-io/groundlink/cmd/gslink-replay/app/options"
	"github.com/groundlink-io/groundlink/internal/replay"
	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
)

const (
	commandName = "gslink-replay"
	commandDesc = `Replay feeds a recorded flight log back through the same validation
path as live telemetry and prints a summary of what the link saw:
accepted and rejected lines, estimated loss and the flight outcome.`
)

func NewApp() *app.App {
	opts := options.NewReplayOptions()
	return app.NewApp(
		commandName,
		"Replay a recorded flight log",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithRunFunc(run(opts)),
	)
}

func run(opts *options.ReplayOptions) app.RunFunc {
	return func(ctx context.Context) error {
		log.Init(opts.Log)

		return replay.Run(ctx, replay.Config{
			TeamID:      opts.TeamID,
			Path:        opts.Path,
			HistorySize: opts.HistorySize,
			Follow:      opts.Follow,
			Logger:      log.Std(),
		}, os.Stdout)
	}
}
