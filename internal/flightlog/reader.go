package flightlog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// ErrHeaderMismatch reports a file whose first row is not the expected
// flight log header.
var ErrHeaderMismatch = errors.New("flight log header mismatch")

// Reader walks a recorded flight log line by line. It satisfies the
// session pipeline's Source so a replay runs through the same
// validation path as live telemetry.
type Reader struct {
	f       *os.File
	scanner *bufio.Scanner
}

func expectedHeader() string {
	return strings.Join(telemetry.FieldNames(), string(telemetry.Separator))
}

// Open validates the header row and positions the reader on the first
// record.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open flight log: %w", err)
	}

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		f.Close()
		if err := scanner.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty file", ErrHeaderMismatch)
	}
	if got := strings.TrimRight(scanner.Text(), "\r"); got != expectedHeader() {
		f.Close()
		return nil, fmt.Errorf("%w: %q", ErrHeaderMismatch, got)
	}
	return &Reader{f: f, scanner: scanner}, nil
}

// ReceiveLine returns the next recorded line, or io.EOF at the end of
// the log.
func (r *Reader) ReceiveLine() ([]byte, error) {
	for r.scanner.Scan() {
		line := r.scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		out := make([]byte, len(line))
		copy(out, line)
		return out, nil
	}
	if err := r.scanner.Err(); err != nil {
		return nil, err
	}
	return nil, io.EOF
}

func (r *Reader) Close() error { return r.f.Close() }
