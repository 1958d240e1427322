package flightlog

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

const testLine = "1000,13:14:02,123,F,ASCENT,452.3,27.5,95.3,7.4," +
	"0.12,-0.05,0.01,0.02,0.00,-0.01,0.23,0.01,0.04,15," +
	"13:14:01,455.1,1.2345,103.8234,8,CXON"

func testRecord(t *testing.T) telemetry.Record {
	t.Helper()
	rec, err := telemetry.NewDecoder("1000").Decode([]byte(testLine))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return rec
}

func TestWriterRoundTrip(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 6, 14, 13, 14, 0, 0, time.UTC)

	w, err := Create(dir, "1000", start)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := filepath.Base(w.Path()); got != "Flight_1000_2026-06-14T13-14-00Z.csv" {
		t.Fatalf("Path() base = %q", got)
	}
	if err := w.Append(testRecord(t)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	r, err := Open(w.Path())
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	line, err := r.ReceiveLine()
	if err != nil {
		t.Fatalf("ReceiveLine() error = %v", err)
	}
	if string(line) != testLine {
		t.Fatalf("ReceiveLine() = %q, want %q", line, testLine)
	}
	if _, err := r.ReceiveLine(); err != io.EOF {
		t.Fatalf("ReceiveLine() at end = %v, want io.EOF", err)
	}
}

func TestOpenRejectsForeignHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); !errors.Is(err, ErrHeaderMismatch) {
		t.Fatalf("Open() error = %v, want header mismatch", err)
	}
}

func TestOpenRejectsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.csv")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); !errors.Is(err, ErrHeaderMismatch) {
		t.Fatalf("Open() error = %v, want header mismatch", err)
	}
}

func TestFollowStreamsAppendedLines(t *testing.T) {
	dir := t.TempDir()
	start := time.Date(2026, 6, 14, 13, 14, 0, 0, time.UTC)

	w, err := Create(dir, "1000", start)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer w.Close()
	if err := w.Append(testRecord(t)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lines := make(chan []byte, 4)
	done := make(chan error, 1)
	go func() {
		done <- Follow(ctx, w.Path(), func(line []byte) error {
			lines <- line
			return nil
		})
	}()

	// Existing record first.
	select {
	case line := <-lines:
		if string(line) != testLine {
			t.Fatalf("followed line = %q", line)
		}
	case <-ctx.Done():
		t.Fatal("no line before deadline")
	}

	// Then a record appended while following.
	if err := w.Append(testRecord(t)); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	select {
	case <-lines:
	case <-ctx.Done():
		t.Fatal("no appended line before deadline")
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Fatalf("Follow() error = %v, want context.Canceled", err)
	}
}
