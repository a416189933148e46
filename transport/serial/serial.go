// Package serial adapts a physical USB/UART serial port to stream.Transport
// (spec.md §2, §6) using go.bug.st/serial. No example repo in the retrieval
// pack ships a serial port driver; this is the one genuinely new
// domain dependency the G-code domain requires that the teacher has no
// analog for (its "transport" is a gRPC client against a remote endpoint).
package serial

import (
	"bufio"
	"context"
	"fmt"
	"sync"
	"time"

	"go.bug.st/serial"

	stream "github.com/opencnc/gcode-streamer"
)

// Config describes how to open the serial port.
type Config struct {
	Port string
	Baud int

	// ReadTimeout bounds each individual read syscall (default 250ms); it
	// does not bound the engine's own response timeout. The reader goroutine
	// checks for Close only between complete lines.
	ReadTimeout time.Duration
}

// Transport is a stream.Transport backed by a real serial port.
type Transport struct {
	port serial.Port

	writeMu sync.Mutex

	lines  chan string
	closed chan struct{}

	closeOnce sync.Once
}

var _ stream.Transport = (*Transport)(nil)

// Open opens the configured serial port and starts the background line
// reader. Callers must Close the returned Transport when done.
func Open(cfg Config) (*Transport, error) {
	if cfg.Port == "" {
		return nil, fmt.Errorf("serial: port is required")
	}
	baud := cfg.Baud
	if baud <= 0 {
		baud = 115200
	}

	mode := &serial.Mode{BaudRate: baud}
	port, err := serial.Open(cfg.Port, mode)
	if err != nil {
		return nil, fmt.Errorf("serial: open %s: %w", cfg.Port, err)
	}

	readTimeout := cfg.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 250 * time.Millisecond
	}
	if err := port.SetReadTimeout(readTimeout); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("serial: set read timeout: %w", err)
	}

	t := &Transport{
		port:   port,
		lines:  make(chan string, 64),
		closed: make(chan struct{}),
	}

	go t.readLoop()

	return t, nil
}

func (t *Transport) readLoop() {
	defer close(t.lines)

	scanner := bufio.NewScanner(t.port)
	scanner.Buffer(make([]byte, 0, 4096), 64*1024)

	for scanner.Scan() {
		select {
		case <-t.closed:
			return
		default:
		}

		line := scanner.Text()
		select {
		case t.lines <- line:
		case <-t.closed:
			return
		}
	}
}

// WriteLine writes b verbatim, serialized against concurrent WriteRealTime
// calls so a real-time byte never lands in the middle of a line (spec.md §6).
func (t *Transport) WriteLine(ctx context.Context, b []byte) error {
	return t.write(ctx, b)
}

// WriteRealTime writes a single out-of-band byte (spec.md §6).
func (t *Transport) WriteRealTime(ctx context.Context, b byte) error {
	return t.write(ctx, []byte{b})
}

func (t *Transport) write(ctx context.Context, b []byte) error {
	select {
	case <-t.closed:
		return fmt.Errorf("serial: transport closed")
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	_, err := t.port.Write(b)
	if err != nil {
		return fmt.Errorf("serial: write: %w", err)
	}
	return nil
}

// Lines returns the channel of inbound ASCII lines, closed when the port is
// closed or the reader observes EOF.
func (t *Transport) Lines() <-chan string {
	return t.lines
}

// Connected reports whether the port has not yet been closed.
func (t *Transport) Connected() bool {
	select {
	case <-t.closed:
		return false
	default:
		return true
	}
}

// Flush is a no-op: go.bug.st/serial's Write is synchronous, so there is no
// separate OS write buffer to drain by the time WriteLine/WriteRealTime
// return (spec.md §4.3: Engine.Stop calls Flush after the feed-hold and
// soft-reset bytes).
func (t *Transport) Flush(ctx context.Context) error {
	return nil
}

// Close closes the underlying port and unblocks the reader goroutine.
func (t *Transport) Close() error {
	var err error
	t.closeOnce.Do(func() {
		close(t.closed)
		err = t.port.Close()
	})
	return err
}
