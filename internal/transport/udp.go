// Package transport provides the line-level datagram plumbing the session
// builds on: receive one line, send one line. One datagram carries exactly
// one record or one command frame.
package transport

import (
	"errors"
	"fmt"
	"net"
	"time"
)

// ErrTimeout is returned by ReceiveLine when no datagram arrived within the
// receiver's read timeout. It is the receive loop's cancellation and
// liveness tick, not a failure.
var ErrTimeout = errors.New("transport: receive timed out")

// maxDatagram bounds a single read. A nominal record is ~150 bytes; 8 KiB
// leaves generous headroom for optional trailing fields.
const maxDatagram = 8192

// LineReceiver reads newline-terminated datagrams from a bound UDP socket.
type LineReceiver struct {
	conn        *net.UDPConn
	readTimeout time.Duration
}

// ListenUDP binds the downlink listener. A bind failure is fatal at startup;
// the caller reports it and does not start.
func ListenUDP(addr string, readTimeout time.Duration) (*LineReceiver, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: resolve %s: %w", addr, err)
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return nil, fmt.Errorf("transport: bind %s: %w", addr, err)
	}
	if readTimeout <= 0 {
		readTimeout = time.Second
	}
	return &LineReceiver{conn: conn, readTimeout: readTimeout}, nil
}

// ReceiveLine blocks for at most the read timeout and returns one datagram
// payload. ErrTimeout marks an idle tick; any other error is a socket
// failure.
func (r *LineReceiver) ReceiveLine() ([]byte, error) {
	if err := r.conn.SetReadDeadline(time.Now().Add(r.readTimeout)); err != nil {
		return nil, err
	}

	buf := make([]byte, maxDatagram)
	n, _, err := r.conn.ReadFromUDP(buf)
	if err != nil {
		var nerr net.Error
		if errors.As(err, &nerr) && nerr.Timeout() {
			return nil, ErrTimeout
		}
		return nil, err
	}
	return buf[:n], nil
}

// LocalAddr returns the bound address.
func (r *LineReceiver) LocalAddr() net.Addr {
	return r.conn.LocalAddr()
}

// Close releases the socket. A blocked ReceiveLine returns with an error.
func (r *LineReceiver) Close() error {
	return r.conn.Close()
}

// LineSender writes one line per datagram to a fixed peer.
type LineSender struct {
	conn *net.UDPConn
}

// DialUDP prepares a sender towards addr.
func DialUDP(addr string) (*LineSender, error) {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, fmt.Errorf("transport: resolve %s: %w", addr, err)
	}
	conn, err := net.DialUDP("udp", nil, udpAddr)
	if err != nil {
		return nil, fmt.Errorf("transport: dial %s: %w", addr, err)
	}
	return &LineSender{conn: conn}, nil
}

// SendLine transmits one line as a single datagram.
func (s *LineSender) SendLine(line string) error {
	_, err := s.conn.Write([]byte(line))
	return err
}

// Close releases the socket.
func (s *LineSender) Close() error {
	return s.conn.Close()
}
