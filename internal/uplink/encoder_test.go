package uplink

import (
	"errors"
	"testing"
)

func TestFormatValidCommands(t *testing.T) {
	enc := NewEncoder("1000")

	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"cal", []string{"CAL"}, "CMD,1000,CAL"},
		{"cal lower", []string{"cal"}, "CMD,1000,CAL"},
		{"cx on lower", []string{"cx", "on"}, "CMD,1000,CX,ON"},
		{"cx off", []string{"CX", "OFF"}, "CMD,1000,CX,OFF"},
		{"st clock", []string{"st", "13:14:02"}, "CMD,1000,ST,13:14:02"},
		{"st gps", []string{"ST", "gps"}, "CMD,1000,ST,GPS"},
		{"sim enable", []string{"sim", "enable"}, "CMD,1000,SIM,ENABLE"},
		{"sim activate", []string{"SIM", "ACTIVATE"}, "CMD,1000,SIM,ACTIVATE"},
		{"simp", []string{"simp", "101325"}, "CMD,1000,SIMP,101325"},
		{"mec", []string{"mec", "servo", "on"}, "CMD,1000,MEC,SERVO,ON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := enc.Format(tt.tokens)
			if err != nil {
				t.Fatalf("format %v: %v", tt.tokens, err)
			}
			if got != tt.want {
				t.Fatalf("format %v = %q, want %q", tt.tokens, got, tt.want)
			}
		})
	}
}

func TestFormatGrammarViolations(t *testing.T) {
	enc := NewEncoder("1000")

	tests := []struct {
		name   string
		tokens []string
	}{
		{"cal with arg", []string{"CAL", "NOW"}},
		{"cx bad arg", []string{"CX", "MAYBE"}},
		{"cx missing arg", []string{"CX"}},
		{"st free text", []string{"ST", "abc"}},
		{"st short clock", []string{"ST", "1:2:3"}},
		{"st misplaced colons", []string{"ST", "131:402:"}},
		{"sim bad arg", []string{"SIM", "ON"}},
		{"simp float", []string{"SIMP", "1013.25"}},
		{"simp negative", []string{"SIMP", "-5"}},
		{"simp empty", []string{"SIMP", ""}},
		{"mec separator in device", []string{"mec", "se,rvo", "on"}},
		{"mec bad state", []string{"MEC", "SERVO", "HALF"}},
		{"mec missing state", []string{"MEC", "SERVO"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := enc.Format(tt.tokens)
			if err == nil {
				t.Fatalf("format %v succeeded with %q, want error", tt.tokens, out)
			}
			var ue *UsageError
			if !errors.As(err, &ue) {
				t.Fatalf("expected UsageError, got %T: %v", err, err)
			}
			if out != "" {
				t.Fatalf("partial output %q on failure", out)
			}
		})
	}
}

func TestFormatUnknownCommand(t *testing.T) {
	enc := NewEncoder("1000")
	_, err := enc.Format([]string{"launch"})
	var uc *UnknownCommandError
	if !errors.As(err, &uc) {
		t.Fatalf("expected UnknownCommandError, got %v", err)
	}
	if uc.Name != "LAUNCH" {
		t.Fatalf("name = %q, want normalized LAUNCH", uc.Name)
	}
}

func TestFormatEmptyTokens(t *testing.T) {
	enc := NewEncoder("1000")
	if _, err := enc.Format(nil); !errors.Is(err, ErrEmptyCommand) {
		t.Fatalf("expected ErrEmptyCommand, got %v", err)
	}
}
