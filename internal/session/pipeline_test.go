package session

import (
	"context"
	"testing"
	"time"

	"github.com/groundlink-io/groundlink/internal/telemetry"
	"github.com/groundlink-io/groundlink/internal/transport"
	"github.com/groundlink-io/groundlink/pkg/log"
)

// scriptedSource replays a fixed set of lines, then times out forever.
type scriptedSource struct {
	lines [][]byte
	next  int
}

func (s *scriptedSource) ReceiveLine() ([]byte, error) {
	if s.next >= len(s.lines) {
		time.Sleep(time.Millisecond)
		return nil, transport.ErrTimeout
	}
	line := s.lines[s.next]
	s.next++
	return line, nil
}

func TestPipelineDeliversRecords(t *testing.T) {
	src := &scriptedSource{lines: [][]byte{
		testLine(1, telemetry.StateLaunchPad),
		[]byte("garbage"),
		testLine(4, telemetry.StateAscent),
	}}

	sess := New(Config{TeamID: "1000"})
	p := NewPipeline(sess, src, PipelineConfig{Logger: log.NewNopLogger()})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()

	var got []Event
	for ev := range p.Events() {
		if ev.Type == EventStale {
			continue
		}
		got = append(got, ev)
		if len(got) == 3 {
			cancel()
			break
		}
	}
	if err := <-done; err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if got[0].Type != EventRecord || got[0].Record.Seq() != 1 {
		t.Fatalf("event 0 = %+v", got[0])
	}
	if got[1].Type != EventReject || got[1].Err == nil {
		t.Fatalf("event 1 = %+v", got[1])
	}
	if got[2].Type != EventRecord || got[2].LossDelta != 2 {
		t.Fatalf("event 2 = %+v", got[2])
	}
}

func TestPipelineReportsStaleLink(t *testing.T) {
	src := &scriptedSource{}
	sess := New(Config{TeamID: "1000"})
	p := NewPipeline(sess, src, PipelineConfig{
		LivenessWindow: 5 * time.Millisecond,
		Logger:         log.NewNopLogger(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	go p.Run(ctx)

	select {
	case ev := <-p.Events():
		if ev.Type != EventStale {
			t.Fatalf("event = %+v, want stale", ev)
		}
	case <-ctx.Done():
		t.Fatal("no stale event before deadline")
	}
	cancel()
}
