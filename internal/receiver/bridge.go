package receiver

import (
	"context"
	"strings"

	"github.com/groundlink-io/groundlink/internal/telemetry"
	"github.com/groundlink-io/groundlink/internal/uplink"
	"github.com/groundlink-io/groundlink/pkg/log"
	"github.com/groundlink-io/groundlink/pkg/mqtt"
	"github.com/groundlink-io/groundlink/pkg/mqtt/topic"
)

// bridge mirrors the downlink onto an MQTT broker and accepts uplink
// commands from it. Telemetry goes out as the raw CSV line; commands
// arrive as whitespace-separated console tokens.
type bridge struct {
	client  mqtt.Client
	topics  *topic.Builder
	teamID  string
	encoder *uplink.Encoder
	send    func(line string) error
	logger  log.Logger
}

func newBridge(client mqtt.Client, topics *topic.Builder, teamID string, send func(line string) error, logger log.Logger) *bridge {
	return &bridge{
		client:  client,
		topics:  topics,
		teamID:  teamID,
		encoder: uplink.NewEncoder(teamID),
		send:    send,
		logger:  logger.WithName("bridge"),
	}
}

// Start connects and subscribes to the command topic.
func (b *bridge) Start(ctx context.Context) error {
	if err := b.client.Start(ctx); err != nil {
		return err
	}
	if err := b.client.AwaitConnection(ctx); err != nil {
		return err
	}
	if err := b.client.Subscribe(ctx, b.topics.Command(b.teamID), 1, b.onCommand); err != nil {
		return err
	}
	b.publishStatus(ctx, statusLive)
	return nil
}

func (b *bridge) Stop(ctx context.Context) {
	b.client.Disconnect(ctx)
}

func (b *bridge) onCommand(ctx context.Context, _ string, payload []byte) {
	tokens := strings.Fields(string(payload))
	frame, err := b.encoder.Format(tokens)
	if err != nil {
		b.logger.Warn("rejected broker command", "payload", string(payload), "reason", err.Error())
		return
	}
	if err := b.send(frame); err != nil {
		b.logger.Error(err, "failed to forward broker command", "frame", frame)
		return
	}
	b.logger.Info("forwarded broker command", "frame", frame)
}

func (b *bridge) publishRecord(ctx context.Context, rec telemetry.Record) {
	t := b.topics.Telemetry(b.teamID)
	if err := b.client.Publish(ctx, t, 0, false, []byte(rec.Line())); err != nil {
		b.logger.Warn("failed to publish record", "topic", t, "reason", err.Error())
	}
}

func (b *bridge) publishFault(ctx context.Context, reason string) {
	t := b.topics.Fault(b.teamID)
	if err := b.client.Publish(ctx, t, 0, false, []byte(reason)); err != nil {
		b.logger.Warn("failed to publish fault", "topic", t, "reason", err.Error())
	}
}

func (b *bridge) publishStatus(ctx context.Context, status string) {
	t := b.topics.Status(b.teamID)
	if err := b.client.Publish(ctx, t, 0, true, []byte(status)); err != nil {
		b.logger.Warn("failed to publish status", "topic", t, "reason", err.Error())
	}
}
