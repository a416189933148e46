package stream

import "fmt"

// ProgramLine is one normalized, streamable row of a loaded program.
//
// Index is stable for the life of the Program; the wire `N<k>` number is not
// stored here, the pump derives it from Index when it writes the line.
type ProgramLine struct {
	Index   int
	Payload string
}

// Program is the ordered, read-only sequence produced by Load.
type Program struct {
	lines []ProgramLine
}

// Total returns the number of lines in the program.
func (p *Program) Total() int {
	if p == nil {
		return 0
	}
	return len(p.lines)
}

// Line returns the line at index, and whether it exists.
func (p *Program) Line(index int) (ProgramLine, bool) {
	if p == nil || index < 0 || index >= len(p.lines) {
		return ProgramLine{}, false
	}
	return p.lines[index], true
}

// Cursors is the three-cursor model of spec.md §3: Sent and Acknowledged are
// authoritative flow-control counters, Executed is advisory, derived from the
// controller's own `Ln:` echo and never used for flow control.
type Cursors struct {
	Sent         int
	Acknowledged int
	Executed     int
	Total        int
}

func (c Cursors) String() string {
	return fmt.Sprintf("sent=%d ack=%d executed=%d total=%d", c.Sent, c.Acknowledged, c.Executed, c.Total)
}

// SendPercent is the send-progress percentage, 0 when Total is 0.
func (c Cursors) SendPercent() float64 {
	if c.Total == 0 {
		return 0
	}
	return 100 * float64(c.Acknowledged) / float64(c.Total)
}

// ExecutionPercent is the execution-progress percentage, 0 when Total is 0.
func (c Cursors) ExecutionPercent() float64 {
	if c.Total == 0 {
		return 0
	}
	return 100 * float64(c.Executed) / float64(c.Total)
}

// State is the engine's finite state set (spec.md §3):
//
//	Idle -> Running <-> Paused -> Draining -> ExecutionComplete -> Idle
//
// with Stopping reachable from anything but Idle, and Faulted on
// unrecoverable error.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateDraining
	StateExecutionComplete
	StateStopping
	StateFaulted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StatePaused:
		return "Paused"
	case StateDraining:
		return "Draining"
	case StateExecutionComplete:
		return "ExecutionComplete"
	case StateStopping:
		return "Stopping"
	case StateFaulted:
		return "Faulted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// RetryState tracks the per-line retry budget (spec.md §3). It resets to
// zero on any Ok and on every new line sent.
type RetryState struct {
	AttemptsCurrentLine int
}

// Snapshot is the read-only view returned by Engine.Snapshot.
type Snapshot struct {
	State      State
	Cursors    Cursors
	Retry      RetryState
	CheckMode  bool
	PauseCause string
}
