// Package commander is the uplink side of the ground station: an
// interactive console that turns operator input into command frames
// and sends them to the flight software.
package commander

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/groundlink-io/groundlink/internal/pkg/metrics"
	"github.com/groundlink-io/groundlink/internal/uplink"
	"github.com/groundlink-io/groundlink/pkg/log"
)

// Sender delivers one encoded frame to the flight software.
type Sender interface {
	SendLine(line string) error
}

// Console reads commands from an operator, one per line, encodes them
// and sends them. Bad input is reported and never sent.
type Console struct {
	encoder *uplink.Encoder
	out     Sender
	echo    io.Writer
	logger  log.Logger
}

func NewConsole(teamID string, out Sender, echo io.Writer, logger log.Logger) *Console {
	return &Console{
		encoder: uplink.NewEncoder(teamID),
		out:     out,
		echo:    echo,
		logger:  logger.WithName("console"),
	}
}

// Dispatch encodes one operator input line and sends the frame. The
// returned frame is empty when the input was rejected or blank.
func (c *Console) Dispatch(input string) (string, error) {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return "", nil
	}

	frame, err := c.encoder.Format(tokens)
	if err != nil {
		metrics.CommandsSent.WithLabelValues("rejected").Inc()
		return "", err
	}
	if err := c.out.SendLine(frame); err != nil {
		metrics.CommandsSent.WithLabelValues("failed").Inc()
		return "", fmt.Errorf("send command: %w", err)
	}
	metrics.CommandsSent.WithLabelValues("sent").Inc()
	return frame, nil
}

// Run consumes operator input until EOF or cancellation.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(c.echo, "enter commands (CAL, CX ON, ST GPS, SIM ENABLE, ...), Ctrl+D to quit")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		frame, err := c.Dispatch(scanner.Text())
		if err != nil {
			var usage *uplink.UsageError
			switch {
			case errors.As(err, &usage):
				fmt.Fprintf(c.echo, "usage: %s\n", usage.Usage)
			default:
				fmt.Fprintf(c.echo, "error: %v\n", err)
			}
			continue
		}
		if frame != "" {
			fmt.Fprintf(c.echo, "sent: %s\n", frame)
			c.logger.Info("sent command frame", "frame", frame)
		}
	}
	return scanner.Err()
}
