package history

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

func record(t *testing.T, seq int, altitude string) telemetry.Record {
	t.Helper()
	line := fmt.Sprintf(
		"1000,13:14:02,%d,F,ASCENT,%s,27.5,95.3,7.4,"+
			"0.12,-0.05,0.01,0.02,0.00,-0.01,0.23,0.01,0.04,15,"+
			"13:14:01,455.1,1.2345,103.8234,8,CXON", seq, altitude)
	rec, err := telemetry.NewDecoder("1000").Decode([]byte(line))
	if err != nil {
		t.Fatalf("build record: %v", err)
	}
	return rec.WithReceivedAt(time.Unix(int64(seq), 0))
}

func TestAppendEvictsOldestFirst(t *testing.T) {
	b := NewBuffer(3)
	for seq := 1; seq <= 4; seq++ {
		b.Append(record(t, seq, "452.3"))
	}

	snap := b.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("len = %d, want 3", len(snap))
	}
	for i, want := range []int64{2, 3, 4} {
		if snap[i].Seq() != want {
			t.Fatalf("snapshot[%d].seq = %d, want %d", i, snap[i].Seq(), want)
		}
	}

	latest, ok := b.Latest()
	if !ok || latest.Seq() != 4 {
		t.Fatalf("latest = (%d,%v), want (4,true)", latest.Seq(), ok)
	}
}

func TestSnapshotIsDefensive(t *testing.T) {
	b := NewBuffer(3)
	b.Append(record(t, 1, "452.3"))

	snap := b.Snapshot()
	snap[0] = telemetry.Record{}

	if latest, ok := b.Latest(); !ok || latest.Seq() != 1 {
		t.Fatalf("buffer mutated through snapshot")
	}
}

func TestSeriesParsesNumericField(t *testing.T) {
	b := NewBuffer(10)
	b.Append(record(t, 1, "10.0"))
	b.Append(record(t, 2, "oops"))
	b.Append(record(t, 3, "30.5"))

	times, values, err := b.Series(telemetry.FieldAltitude)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(times) != 3 || len(values) != 3 {
		t.Fatalf("series lengths = %d/%d, want 3/3", len(times), len(values))
	}
	if values[0] != 10.0 || values[2] != 30.5 {
		t.Fatalf("values = %v", values)
	}
	if !math.IsNaN(values[1]) {
		t.Fatalf("malformed value = %v, want NaN sentinel", values[1])
	}
	if !times[1].After(times[0]) {
		t.Fatalf("timestamps out of order: %v", times)
	}
}

func TestSeriesUnknownField(t *testing.T) {
	b := NewBuffer(10)
	if _, _, err := b.Series("VERTICAL_SPEED"); err == nil {
		t.Fatalf("expected error for unknown field")
	}
}

func TestZeroCapacityFallsBack(t *testing.T) {
	b := NewBuffer(0)
	b.Append(record(t, 1, "452.3"))
	if b.Len() != 1 {
		t.Fatalf("len = %d, want 1", b.Len())
	}
}
