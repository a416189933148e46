package stream

// Event is the tagged variant delivered to an EventSink (spec.md §4.4,
// §9 Design Notes: replaces callback-objects-keyed-by-name with a closed
// event type and a single sink method, so a missing handler is impossible).
type Event interface {
	isEvent()
}

// EventSink is the out-bound observer interface. Delivery is best-effort and
// must never block the pump: implementations that need to do expensive work
// should hand the event off (e.g. to a channel) rather than process it inline.
type EventSink interface {
	OnEvent(Event)
}

// EventSinkFunc adapts a plain function to an EventSink.
type EventSinkFunc func(Event)

func (f EventSinkFunc) OnEvent(e Event) { f(e) }

// ProgressEvent reports send/acknowledge progress. Throttled to at most one
// per T_ui per run, except the terminal value which is always delivered.
type ProgressEvent struct {
	Sent         int
	Acknowledged int
	Total        int
	Percent      float64
}

func (ProgressEvent) isEvent() {}

// ExecutionProgressEvent reports controller-reported execution progress.
// Throttled the same way as ProgressEvent.
type ExecutionProgressEvent struct {
	Executed int
	Total    int
	Percent  float64
}

func (ExecutionProgressEvent) isEvent() {}

// LineSuccessEvent is emitted in strict program order on each acknowledged line.
type LineSuccessEvent struct {
	Index   int
	Payload string
}

func (LineSuccessEvent) isEvent() {}

// LineErrorEvent is emitted on every controller Error/Alarm/timeout for a line,
// including ones that will be retried.
type LineErrorEvent struct {
	Index   int
	Payload string
	Reason  string
}

func (LineErrorEvent) isEvent() {}

// PauseEvent is emitted whenever the engine transitions into Paused.
type PauseEvent struct {
	Reason string
}

func (PauseEvent) isEvent() {}

// ResumeEvent is emitted when the engine transitions from Paused back to Running.
type ResumeEvent struct{}

func (ResumeEvent) isEvent() {}

// StopEvent is emitted once per Stop call that actually acted (i.e. the
// engine was not already Idle/ExecutionComplete/Faulted).
type StopEvent struct{}

func (StopEvent) isEvent() {}

// CompleteEvent is emitted once all lines have been sent and acknowledged.
type CompleteEvent struct {
	Total int
}

func (CompleteEvent) isEvent() {}

// ExecutionCompleteEvent is emitted at most once per run, only after CompleteEvent,
// once the controller has reported Idle with fully-drained cursors for T_quiesce.
type ExecutionCompleteEvent struct {
	Total int
}

func (ExecutionCompleteEvent) isEvent() {}

// StatusUpdateEvent forwards a parsed status frame for observer inspection.
type StatusUpdateEvent struct {
	Report StatusReport
}

func (StatusUpdateEvent) isEvent() {}

// ErrorEvent is emitted alongside any transition to Faulted.
type ErrorEvent struct {
	Message string
}

func (ErrorEvent) isEvent() {}

// OtherEvent forwards an unclassified inbound line verbatim for observer
// inspection (spec.md §4.1, §9 — e.g. FluidNC `[MSG:...]` frames). The
// engine performs no semantic interpretation of this text.
type OtherEvent struct {
	Text string
}

func (OtherEvent) isEvent() {}
