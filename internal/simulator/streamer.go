package simulator

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/groundlink-io/groundlink/internal/uplink"
	"github.com/groundlink-io/groundlink/pkg/log"
)

// Pressure-profile values outside this range are not plausible for an
// atmospheric flight and can be dropped on request.
const (
	MinPressurePa = 50000
	MaxPressurePa = 110000
)

// StreamerConfig drives pressure-profile streaming in simulation mode.
type StreamerConfig struct {
	// RateHz is how many SIMP frames to send per second.
	RateHz float64
	// EnforceRange drops values outside [MinPressurePa, MaxPressurePa].
	EnforceRange bool

	Logger log.Logger
}

// Sender delivers one encoded frame to the flight software.
type Sender interface {
	SendLine(line string) error
}

// StreamPressure reads pressure values in Pascals from the first
// column of a CSV file and sends each as a SIMP command at a fixed
// rate. Malformed rows are skipped with a warning, never fatal.
func StreamPressure(ctx context.Context, path string, enc *uplink.Encoder, out Sender, cfg StreamerConfig) error {
	if cfg.RateHz <= 0 {
		cfg.RateHz = 1.0
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Std()
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open pressure profile: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	ticker := time.NewTicker(time.Duration(float64(time.Second) / cfg.RateHz))
	defer ticker.Stop()

	for {
		row, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read pressure profile: %w", err)
		}
		if len(row) == 0 {
			continue
		}
		raw := strings.TrimSpace(row[0])
		if raw == "" {
			continue
		}

		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			logger.Warn("skipping non-numeric pressure value", "value", raw)
			continue
		}
		pa := int(math.Round(val))
		if cfg.EnforceRange && (pa < MinPressurePa || pa > MaxPressurePa) {
			logger.Warn("skipping out-of-range pressure value", "pascals", pa)
			continue
		}

		frame, err := enc.Format([]string{"SIMP", strconv.Itoa(pa)})
		if err != nil {
			logger.Warn("skipping unencodable pressure value", "pascals", pa, "reason", err.Error())
			continue
		}
		if err := out.SendLine(frame); err != nil {
			return fmt.Errorf("send pressure frame: %w", err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
