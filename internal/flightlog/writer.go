// Package flightlog persists accepted telemetry to CSV flight logs and
// reads them back for replay.
package flightlog

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// FileName returns the flight log name for one ground-station run.
func FileName(teamID string, start time.Time) string {
	return fmt.Sprintf("Flight_%s_%s.csv", teamID, start.UTC().Format("2006-01-02T15-04-05Z"))
}

// Writer appends telemetry records to a CSV flight log. Every record
// is flushed to the operating system as it arrives, so a crash loses
// at most the record being written.
type Writer struct {
	f    *os.File
	csv  *csv.Writer
	path string
}

// Create opens a fresh flight log under dir and writes the header row.
func Create(dir, teamID string, start time.Time) (*Writer, error) {
	path := filepath.Join(dir, FileName(teamID, start))
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create flight log: %w", err)
	}

	w := &Writer{f: f, csv: csv.NewWriter(f), path: path}
	if err := w.csv.Write(telemetry.FieldNames()); err != nil {
		f.Close()
		return nil, fmt.Errorf("write flight log header: %w", err)
	}
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		f.Close()
		return nil, err
	}
	return w, nil
}

// Path returns the location of the log on disk.
func (w *Writer) Path() string { return w.path }

// Append writes one accepted record and flushes it.
func (w *Writer) Append(rec telemetry.Record) error {
	if err := w.csv.Write(rec.Fields()); err != nil {
		return fmt.Errorf("write flight log record: %w", err)
	}
	w.csv.Flush()
	return w.csv.Error()
}

func (w *Writer) Close() error {
	w.csv.Flush()
	if err := w.csv.Error(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
