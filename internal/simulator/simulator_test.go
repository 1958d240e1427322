package simulator

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/groundlink-io/groundlink/internal/telemetry"
	"github.com/groundlink-io/groundlink/internal/uplink"
	"github.com/groundlink-io/groundlink/pkg/log"
)

func TestEncodeFrameDecodes(t *testing.T) {
	p := NewProfile(telemetry.ModeSimulation)
	dec := telemetry.NewDecoder("1000")

	for i := 0; i < 100; i++ {
		f := p.Next()
		line := EncodeFrame("1000", f)

		rec, err := dec.Decode([]byte(line))
		if err != nil {
			t.Fatalf("frame %d rejected: %v", i, err)
		}
		if rec.Seq() != int64(i) {
			t.Fatalf("frame %d Seq() = %d", i, rec.Seq())
		}
		if rec.State() != f.State {
			t.Fatalf("frame %d State() = %q, want %q", i, rec.State(), f.State)
		}
	}
}

func TestProfileWalksMission(t *testing.T) {
	p := NewProfile(telemetry.ModeFlight)

	seen := map[string]bool{}
	peak := 0.0
	for i := 0; i < 100; i++ {
		f := p.Next()
		seen[f.State] = true
		if f.Altitude > peak {
			peak = f.Altitude
		}
	}

	for _, state := range []string{
		telemetry.StateLaunchPad, telemetry.StateAscent, telemetry.StateApogee,
		telemetry.StateDescent, telemetry.StateLanded,
	} {
		if !seen[state] {
			t.Fatalf("profile never reached %s", state)
		}
	}
	if peak != 400.0 {
		t.Fatalf("peak altitude = %v, want 400", peak)
	}
}

type captureSender struct {
	lines []string
}

func (c *captureSender) SendLine(line string) error {
	c.lines = append(c.lines, line)
	return nil
}

func TestStreamPressure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.csv")
	content := "101325\n\nnot-a-number\n95000.6,ignored\n30\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out := &captureSender{}
	err := StreamPressure(context.Background(), path, uplink.NewEncoder("1000"), out, StreamerConfig{
		RateHz:       1000,
		EnforceRange: true,
		Logger:       log.NewNopLogger(),
	})
	if err != nil {
		t.Fatalf("StreamPressure() error = %v", err)
	}

	want := []string{
		"CMD,1000,SIMP,101325",
		"CMD,1000,SIMP,95001",
	}
	if len(out.lines) != len(want) {
		t.Fatalf("sent %d frames, want %d: %v", len(out.lines), len(want), out.lines)
	}
	for i := range want {
		if out.lines[i] != want[i] {
			t.Fatalf("frame %d = %q, want %q", i, out.lines[i], want[i])
		}
	}
}
