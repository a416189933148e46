package stream

import "context"

// Real-time command bytes (spec.md §6): sent out-of-band, bypassing the
// line queue entirely. They are fire-and-forget, never line-numbered, and
// never counted in the Sent cursor.
const (
	RealTimeStatusQuery byte = 0x3F // '?'
	RealTimeFeedHold    byte = 0x21 // '!'
	RealTimeCycleStart  byte = 0x7E // '~'
	RealTimeSoftReset   byte = 0x18
)

// Transport is the byte-level full-duplex link to the controller (spec.md
// §2). It is an external collaborator: the CORE depends only on this seam;
// a concrete adapter (e.g. transport/serial) supplies the real
// implementation, and tests supply a fake.
//
// WriteLine writes len(b) raw bytes, expected to already include any
// trailing line terminator. WriteRealTime writes a single byte out-of-band,
// synchronized against concurrent WriteLine calls by the implementation.
// Lines() returns a channel of inbound ASCII lines (LF-delimited, the
// delimiter stripped); the channel is closed when the transport is closed.
type Transport interface {
	WriteLine(ctx context.Context, b []byte) error
	WriteRealTime(ctx context.Context, b byte) error
	Lines() <-chan string
	Connected() bool
	Flush(ctx context.Context) error
}
