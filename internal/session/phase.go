package session

import (
	"context"

	"github.com/looplab/fsm"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// PhaseMonitor tracks the reported flight state against the nominal
// mission order. Telemetry is the source of truth: an out-of-order
// report is flagged, then adopted, so the monitor never argues with
// the probe about where it is.
type PhaseMonitor struct {
	*fsm.FSM
}

func enterEvent(state string) string { return "enter_" + state }

func NewPhaseMonitor() *PhaseMonitor {
	states := telemetry.FlightStates()

	events := fsm.Events{}
	for i := 1; i < len(states); i++ {
		events = append(events, fsm.EventDesc{
			Name: enterEvent(states[i]),
			Src:  []string{states[i-1]},
			Dst:  states[i],
		})
	}
	// An early touchdown skips the release phases.
	events = append(events, fsm.EventDesc{
		Name: enterEvent(telemetry.StateLanded),
		Src:  []string{telemetry.StateDescent},
		Dst:  telemetry.StateLanded,
	})

	return &PhaseMonitor{FSM: fsm.NewFSM(states[0], events, fsm.Callbacks{})}
}

// Observe feeds the flight state from one record into the monitor. It
// returns true when the reported state was reachable from the current
// phase, false when the monitor had to jump to keep up.
func (m *PhaseMonitor) Observe(ctx context.Context, state string) bool {
	if m.Current() == state {
		return true
	}
	if err := m.Event(ctx, enterEvent(state)); err == nil {
		return true
	}
	// The probe is somewhere we did not expect. Adopt its view.
	m.SetState(state)
	return false
}
