package session

import (
	"context"
	"testing"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

func TestPhaseMonitorNominalMission(t *testing.T) {
	m := NewPhaseMonitor()
	ctx := context.Background()

	for _, state := range telemetry.FlightStates() {
		if !m.Observe(ctx, state) {
			t.Fatalf("Observe(%q) flagged a nominal transition", state)
		}
		if m.Current() != state {
			t.Fatalf("Current() = %q, want %q", m.Current(), state)
		}
	}
}

func TestPhaseMonitorRepeatedState(t *testing.T) {
	m := NewPhaseMonitor()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if !m.Observe(ctx, telemetry.StateLaunchPad) {
			t.Fatal("Observe() flagged a repeated state")
		}
	}
}

func TestPhaseMonitorEarlyTouchdown(t *testing.T) {
	m := NewPhaseMonitor()
	ctx := context.Background()

	for _, state := range []string{telemetry.StateAscent, telemetry.StateApogee, telemetry.StateDescent} {
		if !m.Observe(ctx, state) {
			t.Fatalf("Observe(%q) flagged a nominal transition", state)
		}
	}
	if !m.Observe(ctx, telemetry.StateLanded) {
		t.Fatal("Observe(LANDED) flagged a descent touchdown")
	}
}

func TestPhaseMonitorSkipAdoptsState(t *testing.T) {
	m := NewPhaseMonitor()
	ctx := context.Background()

	if m.Observe(ctx, telemetry.StateDescent) {
		t.Fatal("Observe() accepted a jump from LAUNCH_PAD to DESCENT")
	}
	if m.Current() != telemetry.StateDescent {
		t.Fatalf("Current() = %q after jump, want DESCENT", m.Current())
	}
	if !m.Observe(ctx, telemetry.StateProbeRelease) {
		t.Fatal("Observe() flagged a nominal transition after adopting the jump")
	}
}
