package flightlog

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/groundlink-io/groundlink/internal/telemetry"
)

// LineFunc handles one complete line from a followed flight log.
type LineFunc func(line []byte) error

// Follow streams a flight log as it is being written: existing records
// first, then every line appended until ctx is cancelled. The header
// row is validated and not passed to fn.
func Follow(ctx context.Context, path string, fn LineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open flight log: %w", err)
	}
	defer f.Close()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watch flight log: %w", err)
	}

	br := bufio.NewReader(f)
	var partial []byte
	sawHeader := false

	for {
		chunk, err := br.ReadBytes('\n')
		partial = append(partial, chunk...)

		if err == nil {
			line := bytes.TrimRight(partial, "\r\n")
			partial = partial[:0]

			if !sawHeader {
				sawHeader = true
				if string(line) != strings.Join(telemetry.FieldNames(), string(telemetry.Separator)) {
					return fmt.Errorf("%w: %q", ErrHeaderMismatch, line)
				}
				continue
			}
			if len(line) == 0 {
				continue
			}
			out := make([]byte, len(line))
			copy(out, line)
			if err := fn(out); err != nil {
				return err
			}
			continue
		}
		if err != io.EOF {
			return err
		}

		// Caught up. Wait for the writer to append more.
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				return fmt.Errorf("flight log went away: %s", path)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}
