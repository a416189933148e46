package stream

import (
	"errors"
	"fmt"
)

// Misuse errors (spec.md §4.3, §7): returned synchronously from the
// offending operation, engine state unchanged.
var (
	ErrNotConnected = errors.New("transport is not connected")
	ErrEmpty        = errors.New("program is empty")
	ErrBusy         = errors.New("engine is not idle")
	ErrWrongState   = errors.New("operation not valid in current engine state")
)

// ProtocolError wraps a controller-reported Error or Alarm condition (or a
// response timeout). An Error or timeout is retried up to max_retries, after
// which the engine pauses with the reason "max retries"; an Alarm is not
// retried and its Error() text becomes the Pause reason (spec.md §7).
type ProtocolError struct {
	Alarm bool
	Code  int
	HasCode bool
	Text  string
}

func (e *ProtocolError) Error() string {
	kind := "error"
	if e.Alarm {
		kind = "alarm"
	}
	if e.HasCode {
		return fmt.Sprintf("controller %s: %d", kind, e.Code)
	}
	return fmt.Sprintf("controller %s: %s", kind, e.Text)
}

// TransportError wraps a fatal transport-layer failure (spec.md §7). The
// engine builds one when the inbound line stream closes mid-run, which drives
// it to Faulted. A failed line write is not wrapped in it: that pauses the run.
type TransportError struct {
	original error
}

// NewTransportError wraps original, which must be non-nil.
func NewTransportError(original error) *TransportError {
	if original == nil {
		panic(fmt.Errorf("the 'original' argument is mandatory"))
	}
	return &TransportError{original}
}

func (e *TransportError) Unwrap() error {
	return e.original
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %s", e.original)
}
