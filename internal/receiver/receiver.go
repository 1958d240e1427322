// Package receiver runs the ground-station downlink: UDP telemetry in,
// validated records out to the flight log, the HTTP API and optionally
// an MQTT broker.
package receiver

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/groundlink-io/groundlink/internal/flightlog"
	"github.com/groundlink-io/groundlink/internal/pkg/metrics"
	"github.com/groundlink-io/groundlink/internal/session"
	"github.com/groundlink-io/groundlink/internal/telemetry"
	"github.com/groundlink-io/groundlink/internal/transport"
	"github.com/groundlink-io/groundlink/pkg/log"
	"github.com/groundlink-io/groundlink/pkg/mqtt"
	"github.com/groundlink-io/groundlink/pkg/mqtt/topic"
)

// heartbeatEvery is how many accepted records pass between heartbeat
// log lines.
const heartbeatEvery = 5

const (
	statusLive  = "live"
	statusStale = "stale"
)

type Receiver struct {
	cfg    *Config
	sess   *session.Session
	phase  *session.PhaseMonitor
	http   *httpServer
	logger log.Logger
}

func New(cfg *Config) (*Receiver, error) {
	if cfg.TeamID == "" {
		return nil, fmt.Errorf("team id must be set")
	}

	logger := log.WithName("receiver")
	sess := session.New(session.Config{TeamID: cfg.TeamID, HistorySize: cfg.HistorySize})

	return &Receiver{
		cfg:    cfg,
		sess:   sess,
		phase:  session.NewPhaseMonitor(),
		http:   newHTTPServer(cfg.HTTPOptions, sess, logger),
		logger: logger,
	}, nil
}

// Run blocks until ctx is cancelled or a component fails.
func (r *Receiver) Run(ctx context.Context) error {
	src, err := transport.ListenUDP(r.cfg.UDPOptions.ListenAddr, r.cfg.UDPOptions.ReadTimeout)
	if err != nil {
		return err
	}
	defer src.Close()
	r.logger.Info("listening for telemetry", "addr", src.LocalAddr(), "team", r.cfg.TeamID)

	flight, err := flightlog.Create(r.cfg.LogDir, r.cfg.TeamID, time.Now())
	if err != nil {
		return err
	}
	r.logger.Info("opened flight log", "path", flight.Path())

	var brd *bridge
	if r.cfg.MqttOptions.Enabled {
		uplinkOut, err := transport.DialUDP(r.cfg.UplinkOptions.TargetAddr)
		if err != nil {
			flight.Close()
			return err
		}
		defer uplinkOut.Close()

		client, err := mqtt.NewClient(r.cfg.MqttOptions.ToClientConfig())
		if err != nil {
			flight.Close()
			return err
		}
		brd = newBridge(client, topic.NewBuilder(r.cfg.MqttOptions.TopicRoot), r.cfg.TeamID, uplinkOut.SendLine, r.logger)
		if err := brd.Start(ctx); err != nil {
			flight.Close()
			return fmt.Errorf("start mqtt bridge: %w", err)
		}
		defer brd.Stop(context.Background())
	}

	pipe := session.NewPipeline(r.sess, src, session.PipelineConfig{
		QueueSize:      r.cfg.QueueSize,
		LivenessWindow: r.cfg.UDPOptions.LivenessWindow,
		Logger:         r.logger,
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return pipe.Run(ctx) })
	g.Go(func() error { return r.consume(ctx, pipe.Events(), flight, brd) })
	g.Go(func() error { return r.http.Start(ctx) })

	runErr := g.Wait()

	if err := flight.Close(); err != nil {
		r.logger.Error(err, "failed to close flight log")
	} else if r.cfg.S3Options.Enabled {
		r.archive(flight.Path())
	}
	return runErr
}

func (r *Receiver) consume(ctx context.Context, events <-chan session.Event, flight *flightlog.Writer, brd *bridge) error {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			r.handleEvent(ctx, ev, flight, brd)
		case <-ctx.Done():
			return nil
		}
	}
}

func (r *Receiver) handleEvent(ctx context.Context, ev session.Event, flight *flightlog.Writer, brd *bridge) {
	switch ev.Type {
	case session.EventRecord:
		rec := ev.Record
		metrics.PacketsAccepted.Inc()
		metrics.PacketsLost.Add(float64(ev.LossDelta))
		metrics.LastSequence.Set(float64(rec.Seq()))
		metrics.LinkUp.Set(1)

		if ev.LossDelta > 0 {
			r.logger.Warn("sequence gap on downlink", "seq", rec.Seq(), "lost", ev.LossDelta)
		}
		if !r.phase.Observe(ctx, rec.State()) {
			r.logger.Warn("flight state out of mission order", "seq", rec.Seq(), "state", rec.State())
		}
		if err := flight.Append(rec); err != nil {
			r.logger.Error(err, "failed to append to flight log", "seq", rec.Seq())
		}
		if brd != nil {
			brd.publishRecord(ctx, rec)
		}

		if st := r.sess.Stats(); st.Accepted%heartbeatEvery == 0 {
			r.logger.Info("downlink heartbeat",
				"accepted", st.Accepted, "rejected", st.Rejected,
				"lost", st.Lost, "seq", st.LastSeq, "state", rec.State())
		}

	case session.EventReject:
		reason := telemetry.RejectReason(ev.Err)
		metrics.PacketsRejected.WithLabelValues(reason).Inc()
		if brd != nil {
			brd.publishFault(ctx, reason)
		}

	case session.EventStale:
		metrics.LinkUp.Set(0)
		if brd != nil {
			brd.publishStatus(ctx, statusStale)
		}
	}
}

func (r *Receiver) archive(path string) {
	arch, err := flightlog.NewArchiver(r.cfg.S3Options)
	if err != nil {
		r.logger.Error(err, "failed to create flight log archiver")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := arch.EnsureBucket(ctx); err != nil {
		r.logger.Error(err, "failed to ensure archive bucket")
		return
	}
	key, err := arch.Upload(ctx, path)
	if err != nil {
		r.logger.Error(err, "failed to archive flight log", "path", path)
		return
	}
	r.logger.Info("archived flight log", "key", key, "bucket", r.cfg.S3Options.BucketName)
}
