package session

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/groundlink-io/groundlink/internal/transport"
	"github.com/groundlink-io/groundlink/pkg/log"
)

// Source is where raw telemetry lines come from. The UDP receiver is
// the usual source; replay feeds the same pipeline from a file.
type Source interface {
	ReceiveLine() ([]byte, error)
}

// DefaultQueueSize bounds the raw-line queue between the receive loop
// and the consumer.
const DefaultQueueSize = 64

// DefaultLivenessWindow is how long the downlink may stay silent
// before the pipeline reports it stale.
const DefaultLivenessWindow = 2500 * time.Millisecond

// PipelineConfig wires a Source into a Session.
type PipelineConfig struct {
	QueueSize      int
	LivenessWindow time.Duration

	// Logger defaults to the package-level standard logger.
	Logger log.Logger
}

// Pipeline runs the receive loop and the single consumer that owns all
// session mutation. Raw lines travel through a bounded queue; when the
// consumer falls behind, the receive loop blocks rather than drop.
type Pipeline struct {
	sess   *Session
	src    Source
	logger log.Logger

	queue  chan []byte
	events chan Event

	livenessWindow time.Duration
}

func NewPipeline(sess *Session, src Source, cfg PipelineConfig) *Pipeline {
	size := cfg.QueueSize
	if size <= 0 {
		size = DefaultQueueSize
	}
	window := cfg.LivenessWindow
	if window <= 0 {
		window = DefaultLivenessWindow
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Std()
	}
	return &Pipeline{
		sess:           sess,
		src:            src,
		logger:         logger.WithName("pipeline"),
		queue:          make(chan []byte, size),
		events:         make(chan Event, size),
		livenessWindow: window,
	}
}

// Events delivers pipeline observations to the consumer side. The
// channel is closed when Run returns.
func (p *Pipeline) Events() <-chan Event { return p.events }

// Run blocks until ctx is cancelled or the source fails. The events
// channel is closed on the way out.
func (p *Pipeline) Run(ctx context.Context) error {
	defer close(p.events)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error { return p.receiveLoop(ctx) })
	eg.Go(func() error { return p.consumeLoop(ctx) })
	return eg.Wait()
}

func (p *Pipeline) receiveLoop(ctx context.Context) error {
	defer close(p.queue)

	lastData := time.Now()
	var lastWarn time.Time

	for {
		if ctx.Err() != nil {
			return nil
		}

		line, err := p.src.ReceiveLine()
		if err != nil {
			if errors.Is(err, transport.ErrTimeout) {
				now := time.Now()
				if now.Sub(lastData) > p.livenessWindow && now.Sub(lastWarn) > p.livenessWindow {
					lastWarn = now
					p.logger.Warn("no telemetry within liveness window",
						"window", p.livenessWindow, "silentFor", now.Sub(lastData))
					if !p.deliver(ctx, Event{Type: EventStale}) {
						return nil
					}
				}
				continue
			}
			if ctx.Err() != nil {
				return nil
			}
			return err
		}

		lastData = time.Now()
		select {
		case p.queue <- line:
		case <-ctx.Done():
			return nil
		}
	}
}

func (p *Pipeline) consumeLoop(ctx context.Context) error {
	for {
		select {
		case line, ok := <-p.queue:
			if !ok {
				return nil
			}
			rec, lost, err := p.sess.Accept(line)
			if err != nil {
				p.logger.Warn("rejected telemetry line", "reason", err.Error())
				if !p.deliver(ctx, Event{Type: EventReject, Err: err}) {
					return nil
				}
				continue
			}
			if !p.deliver(ctx, Event{Type: EventRecord, Record: rec, LossDelta: lost}) {
				return nil
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (p *Pipeline) deliver(ctx context.Context, ev Event) bool {
	select {
	case p.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}
