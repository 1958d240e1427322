package telemetry

import "testing"

func TestFieldOrder(t *testing.T) {
	names := FieldNames()
	if len(names) != 25 {
		t.Fatalf("field count = %d, want 25", len(names))
	}
	if names[0] != FieldTeamID || names[len(names)-1] != FieldCmdEcho {
		t.Fatalf("unexpected boundary fields: %q ... %q", names[0], names[len(names)-1])
	}

	for i, name := range names {
		idx, ok := FieldIndex(name)
		if !ok || idx != i {
			t.Fatalf("index for %q = (%d,%v), want (%d,true)", name, idx, ok, i)
		}
	}
}

func TestFieldNamesReturnsCopy(t *testing.T) {
	names := FieldNames()
	names[0] = "CLOBBERED"
	if fresh := FieldNames(); fresh[0] != FieldTeamID {
		t.Fatalf("schema field order was mutated through a returned slice")
	}
}

func TestModeAndStateSets(t *testing.T) {
	if !ValidMode(ModeFlight) || !ValidMode(ModeSimulation) {
		t.Fatalf("allowed modes rejected")
	}
	if ValidMode("FS") || ValidMode("") {
		t.Fatalf("invalid mode accepted")
	}

	for _, s := range FlightStates() {
		if !ValidState(s) {
			t.Fatalf("state %q not accepted", s)
		}
	}
	if ValidState("ascent") {
		t.Fatalf("states must be case-sensitive")
	}
}
