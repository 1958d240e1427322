package topic

import "testing"

func TestBuilderTopics(t *testing.T) {
	b := NewBuilder("gs/v1")

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"telemetry", b.Telemetry("1000"), "gs/v1/telemetry/1000"},
		{"fault", b.Fault("1000"), "gs/v1/telemetry/fault/1000"},
		{"status", b.Status("1000"), "gs/v1/status/1000"},
		{"command", b.Command("1000"), "gs/v1/command/1000"},
	}

	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s topic = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
