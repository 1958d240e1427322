package session

import (
	"fmt"
	"testing"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

func testLine(seq int64, state string) []byte {
	return []byte(fmt.Sprintf(
		"1000,13:14:02,%d,F,%s,452.3,27.5,95.3,7.4,"+
			"0.12,-0.05,0.01,0.02,0.00,-0.01,0.23,0.01,0.04,15,"+
			"13:14:01,455.1,1.2345,103.8234,8,CXON", seq, state))
}

func TestSessionAccept(t *testing.T) {
	s := New(Config{TeamID: "1000", HistorySize: 16})

	rec, lost, err := s.Accept(testLine(10, telemetry.StateAscent))
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if lost != 0 {
		t.Fatalf("first record lost = %d, want 0", lost)
	}
	if rec.ReceivedAt().IsZero() {
		t.Fatal("ReceivedAt not stamped")
	}

	if _, lost, err = s.Accept(testLine(13, telemetry.StateAscent)); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if lost != 2 {
		t.Fatalf("lost = %d, want 2", lost)
	}

	st := s.Stats()
	if st.Accepted != 2 || st.Lost != 2 || st.LastSeq != 13 {
		t.Fatalf("Stats() = %+v", st)
	}
	if got := len(s.Snapshot()); got != 2 {
		t.Fatalf("Snapshot() len = %d, want 2", got)
	}
}

func TestSessionRejectDoesNotMutate(t *testing.T) {
	s := New(Config{TeamID: "1000"})
	if _, _, err := s.Accept(testLine(5, telemetry.StateLaunchPad)); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}

	if _, _, err := s.Accept([]byte("2031,13:14:02,6,F,ASCENT")); err == nil {
		t.Fatal("Accept() accepted a foreign team line")
	}

	st := s.Stats()
	if st.Accepted != 1 || st.Rejected != 1 || st.LastSeq != 5 {
		t.Fatalf("Stats() = %+v", st)
	}
	if _, _, err := s.Series(telemetry.FieldAltitude); err != nil {
		t.Fatalf("Series() error = %v", err)
	}
	if got := len(s.Snapshot()); got != 1 {
		t.Fatalf("Snapshot() len = %d, want 1", got)
	}
}

func TestSessionLatest(t *testing.T) {
	s := New(Config{TeamID: "1000"})
	if _, ok := s.Latest(); ok {
		t.Fatal("Latest() reported a record on an empty session")
	}
	if _, _, err := s.Accept(testLine(1, telemetry.StateLaunchPad)); err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	rec, ok := s.Latest()
	if !ok || rec.Seq() != 1 {
		t.Fatalf("Latest() = %v, %v", rec.Seq(), ok)
	}
}
