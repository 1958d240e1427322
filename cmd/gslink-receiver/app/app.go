package app

import (
	"context"
	"fmt"

	"github.com/groundlink-io/groundlink/cmd/gslink-receiver/app/options"
	"github.com/groundlink-io/groundlink/internal/receiver"
	"github.com/groundlink-io/groundlink/pkg/app"
	"github.com/groundlink-io/groundlink/pkg/log"
)

const (
	commandName = "gslink-receiver"
	commandDesc = `The receiver is the downlink side of the ground station. It listens
for telemetry datagrams, validates each line, tracks sequence loss,
writes the flight log and serves the telemetry API. With an MQTT
broker configured it also mirrors the link and accepts remote
commands.`
)

func NewApp() *app.App {
	opts := options.NewReceiverOptions()
	return app.NewApp(
		commandName,
		"Launch the ground-station telemetry receiver",
		app.WithDescription(commandDesc),
		app.WithOptions(opts),
		app.WithRunFunc(run(opts)),
	)
}

func run(opts *options.ReceiverOptions) app.RunFunc {
	return func(ctx context.Context) error {
		log.Init(opts.Log)

		cfg, err := opts.Config()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		rcv, err := receiver.New(cfg)
		if err != nil {
			return fmt.Errorf("failed to create receiver: %w", err)
		}
		return rcv.Run(ctx)
	}
}
