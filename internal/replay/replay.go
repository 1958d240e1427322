// Package replay feeds a recorded flight log back through the same
// validation path as live telemetry and reports what the link saw.
package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gosuri/uitable"

	"github.com/groundlink-io/groundlink/internal/flightlog"
	"github.com/groundlink-io/groundlink/internal/session"
	"github.com/groundlink-io/groundlink/internal/telemetry"
	"github.com/groundlink-io/groundlink/pkg/log"
)

// Config drives one replay run.
type Config struct {
	// TeamID validates the recorded lines, exactly as live.
	TeamID string
	// Path is the flight log to read.
	Path string
	// HistorySize bounds the replay session buffer.
	HistorySize int
	// Follow keeps reading as the log grows instead of stopping at EOF.
	Follow bool

	Logger log.Logger
}

// Run replays the log and writes a summary table to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Std()
	}
	logger = logger.WithName("replay")

	sess := session.New(session.Config{TeamID: cfg.TeamID, HistorySize: cfg.HistorySize})

	if cfg.Follow {
		err := flightlog.Follow(ctx, cfg.Path, func(line []byte) error {
			replayLine(sess, line, logger)
			return nil
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return summarize(sess, out)
	}

	r, err := flightlog.Open(cfg.Path)
	if err != nil {
		return err
	}
	defer r.Close()

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		line, err := r.ReceiveLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}
		replayLine(sess, line, logger)
	}
	return summarize(sess, out)
}

func replayLine(sess *session.Session, line []byte, logger log.Logger) {
	rec, lost, err := sess.Accept(line)
	if err != nil {
		logger.Warn("rejected recorded line", "reason", err.Error())
		return
	}
	if lost > 0 {
		logger.Warn("sequence gap in recording", "seq", rec.Seq(), "lost", lost)
	}
}

func summarize(sess *session.Session, out io.Writer) error {
	st := sess.Stats()

	table := uitable.New()
	table.AddRow("ACCEPTED", st.Accepted)
	table.AddRow("REJECTED", st.Rejected)
	table.AddRow("LOST", st.Lost)
	if st.Accepted > 0 {
		table.AddRow("LAST SEQ", st.LastSeq)
	}
	if rec, ok := sess.Latest(); ok {
		table.AddRow("FINAL STATE", rec.State())
	}
	if peak, ok := peakAltitude(sess); ok {
		table.AddRow("PEAK ALTITUDE", fmt.Sprintf("%.1f m", peak))
	}

	_, err := fmt.Fprintln(out, table)
	return err
}

func peakAltitude(sess *session.Session) (float64, bool) {
	_, values, err := sess.Series(telemetry.FieldAltitude)
	if err != nil {
		return 0, false
	}
	peak := math.Inf(-1)
	found := false
	for _, v := range values {
		if !math.IsNaN(v) && v > peak {
			peak = v
			found = true
		}
	}
	return peak, found
}
