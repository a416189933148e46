package stream

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/streamingfast/logging"
	"github.com/streamingfast/shutter"
	"go.uber.org/zap"
)

// Default configuration values (spec.md §6).
const (
	DefaultMaxRetries     = 3
	DefaultResponseTimeout = 30 * time.Second
	DefaultRetryDelay      = 1 * time.Second
	DefaultQuiesceDuration = 2 * time.Second
	DefaultUIThrottle      = 250 * time.Millisecond
	DefaultLineNumberBase  = 1
	DefaultStatsLogEach    = 15 * time.Second
)

// Engine is the Streaming Engine (spec.md §4.3): the state machine that
// issues lines, tracks the three cursors, enforces retries and timeouts,
// applies pause/resume/cancel, and emits progress events.
//
// Grounded on the teacher's Sinker: a *shutter.Shutter-embedding value type
// constructed with functional options, exposing a small set of operations
// plus a long-running task that drives the wire protocol. The teacher's
// single blocking Run(ctx, cursor, handlers) is generalized here into a
// background pump goroutine started once at construction, fed by a command
// channel, so that Start/Pause/Resume/Stop/StatusQuery can all return
// synchronously as spec.md §4.3 requires (the teacher's Run blocks for the
// whole stream; ours must not, since callers need to Pause mid-run).
type Engine struct {
	*shutter.Shutter

	logger *zap.Logger
	tracer logging.Tracer
	sink   EventSink

	maxRetries     int
	tResp          time.Duration
	tRetry         time.Duration
	tQuiesce       time.Duration
	tUI            time.Duration
	useLineNumbers bool
	lineNumberBase int
	checkMode      bool
	statsLogEach   time.Duration

	cmdCh chan any

	// Everything below is owned exclusively by the pump goroutine (run()).
	program                *Program
	state                  State
	cursors                Cursors
	retry                  RetryState
	pauseCause             string
	transport              Transport
	lines                  <-chan string
	checkModeActive        bool
	executionCompleteFired bool
	quiesce                *quiesceTracker
	stats                  *runStats
	responseTimer          *time.Timer
	retryTimer             *time.Timer
	retryBackOff           backoff.BackOff
	lastProgressEmit       time.Time
	lastExecProgressEmit   time.Time
	lastLineSentAt         time.Time
	ctx                    context.Context

	snap snapshotBox
}

// NewEngine constructs an Engine and starts its background pump goroutine.
// Call Close when done to stop the pump and release resources.
func NewEngine(logger *zap.Logger, tracer logging.Tracer, sink EventSink, opts ...Option) *Engine {
	e := &Engine{
		Shutter: shutter.New(),
		logger:  logger,
		tracer:  tracer,
		sink:    sink,

		maxRetries:     DefaultMaxRetries,
		tResp:          DefaultResponseTimeout,
		tRetry:         DefaultRetryDelay,
		tQuiesce:       DefaultQuiesceDuration,
		tUI:            DefaultUIThrottle,
		useLineNumbers: true,
		lineNumberBase: DefaultLineNumberBase,
		statsLogEach:   DefaultStatsLogEach,

		cmdCh:   make(chan any),
		program: &Program{},
		state:   StateIdle,
		ctx:     context.Background(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.quiesce = newQuiesceTracker(e.tQuiesce)
	e.publishSnapshot()

	e.OnTerminating(func(_ error) {
		if e.stats != nil {
			e.stats.Close()
		}
	})

	go e.run()

	return e
}

// snapshotBox lets Snapshot() be called safely from any goroutine while the
// pump goroutine remains the sole writer of engine state.
type snapshotBox struct {
	ch chan Snapshot // buffered, size 1, always holds the latest value
}

func newSnapshotBox() snapshotBox {
	return snapshotBox{ch: make(chan Snapshot, 1)}
}

func (b *snapshotBox) publish(s Snapshot) {
	select {
	case <-b.ch:
	default:
	}
	b.ch <- s
}

func (b *snapshotBox) read() Snapshot {
	s := <-b.ch
	b.ch <- s
	return s
}

func (e *Engine) publishSnapshot() {
	if e.snap.ch == nil {
		e.snap = newSnapshotBox()
	}
	e.snap.publish(Snapshot{
		State:      e.state,
		Cursors:    e.cursors,
		Retry:      e.retry,
		CheckMode:  e.checkModeActive,
		PauseCause: e.pauseCause,
	})
}

// Snapshot returns a read-only view of cursors, state, retry count and
// totals (spec.md §4.3). Never fails.
func (e *Engine) Snapshot() Snapshot {
	return e.snap.read()
}

// --- commands ---

type cmdLoad struct {
	text string
	done chan struct{}
}

type cmdStart struct {
	ctx       context.Context
	transport Transport
	result    chan error
}

type cmdPause struct {
	reason string
	result chan error
}

type cmdResume struct {
	result chan error
}

type cmdStop struct {
	result chan error
}

type cmdStatusQuery struct {
	ctx    context.Context
	result chan error
}

// sendCommand delivers cmd to the pump goroutine, respecting engine
// shutdown so callers never block forever against a closed engine.
func (e *Engine) sendCommand(cmd any) bool {
	select {
	case e.cmdCh <- cmd:
		return true
	case <-e.Terminating():
		return false
	}
}

// Load replaces the Program and resets cursors & retry state (spec.md
// §4.3). Valid in any state; never fails on well-formed text.
func (e *Engine) Load(text string) {
	done := make(chan struct{})
	if !e.sendCommand(cmdLoad{text: text, done: done}) {
		return
	}
	select {
	case <-done:
	case <-e.Terminating():
	}
}

// Start transitions Idle -> Running and writes the first line (spec.md
// §4.3). Fails synchronously with ErrNotConnected, ErrEmpty or ErrBusy.
func (e *Engine) Start(ctx context.Context, transport Transport) error {
	result := make(chan error, 1)
	if !e.sendCommand(cmdStart{ctx: ctx, transport: transport, result: result}) {
		return ErrWrongState
	}
	return e.waitResult(result)
}

// Pause transitions Running -> Paused and injects a feed-hold real-time
// byte. Fails synchronously with ErrWrongState.
func (e *Engine) Pause(reason string) error {
	result := make(chan error, 1)
	if !e.sendCommand(cmdPause{reason: reason, result: result}) {
		return ErrWrongState
	}
	return e.waitResult(result)
}

// Resume injects a cycle-start real-time byte, transitions Paused ->
// Running, and re-drives the send pump. Fails synchronously with
// ErrWrongState.
func (e *Engine) Resume() error {
	result := make(chan error, 1)
	if !e.sendCommand(cmdResume{result: result}) {
		return ErrWrongState
	}
	return e.waitResult(result)
}

// Stop drops the rest of the program, cancels timeouts, and transitions to
// Idle via Stopping. Idempotent: a second Stop is a no-op.
func (e *Engine) Stop() error {
	result := make(chan error, 1)
	if !e.sendCommand(cmdStop{result: result}) {
		return nil
	}
	return e.waitResult(result)
}

// StatusQuery writes the single-byte `?` real-time command. Fails
// synchronously with ErrNotConnected.
func (e *Engine) StatusQuery(ctx context.Context) error {
	result := make(chan error, 1)
	if !e.sendCommand(cmdStatusQuery{ctx: ctx, result: result}) {
		return ErrWrongState
	}
	return e.waitResult(result)
}

func (e *Engine) waitResult(result chan error) error {
	select {
	case err := <-result:
		return err
	case <-e.Terminating():
		return ErrWrongState
	}
}

// Close stops the pump goroutine. Safe to call multiple times.
func (e *Engine) Close() {
	e.Shutdown(nil)
}

func respond(result chan error, err error) {
	if result != nil {
		result <- err
	}
}

// traceEnabled reports whether per-line Debug chatter should be logged,
// mirroring the teacher's s.tracer.Enabled() gate around its per-message
// Debug logs (sinker.go).
func (e *Engine) traceEnabled() bool {
	return e.tracer != nil && e.tracer.Enabled()
}

// effectiveStatsLogEach applies the teacher's logEach cadence switch
// (sinker.go's Run: 15s normally, 5s when tracing is enabled) unless the
// caller overrode statsLogEach away from its default via WithStatsLogInterval.
func (e *Engine) effectiveStatsLogEach() time.Duration {
	if e.statsLogEach == DefaultStatsLogEach && e.traceEnabled() {
		return 5 * time.Second
	}
	return e.statsLogEach
}

// run is the single task that owns Program, Cursors, RetryState and State,
// and drives the wire protocol (spec.md §5). It never suspends anywhere
// other than writing a line, awaiting the next inbound line, awaiting a
// timeout, or the T_retry delay.
func (e *Engine) run() {
	for {
		var timeoutC <-chan time.Time
		if e.responseTimer != nil {
			timeoutC = e.responseTimer.C
		}
		var retryC <-chan time.Time
		if e.retryTimer != nil {
			retryC = e.retryTimer.C
		}

		select {
		case cmd := <-e.cmdCh:
			e.dispatch(cmd)

		case line, ok := <-e.lines:
			if !ok {
				e.lines = nil
				e.onReadClosed()
				continue
			}
			e.onLine(line)

		case <-timeoutC:
			e.responseTimer = nil
			e.onResponseTimeout()

		case <-retryC:
			e.retryTimer = nil
			e.onRetryFire()

		case <-e.Terminating():
			e.cancelTimers()
			return
		}

		e.publishSnapshot()
	}
}

func (e *Engine) dispatch(cmd any) {
	switch c := cmd.(type) {
	case cmdLoad:
		e.handleLoad(c)
	case cmdStart:
		e.handleStart(c)
	case cmdPause:
		e.handlePause(c)
	case cmdResume:
		e.handleResume(c)
	case cmdStop:
		e.handleStop(c)
	case cmdStatusQuery:
		e.handleStatusQuery(c)
	default:
		e.logger.Warn("unknown engine command", zap.Reflect("command", cmd))
	}
}

func (e *Engine) handleLoad(c cmdLoad) {
	e.program = ParseProgram(c.text)
	e.cursors = Cursors{Total: e.program.Total()}
	e.retry = RetryState{}
	e.executionCompleteFired = false
	if e.quiesce != nil {
		e.quiesce.reset()
	}
	close(c.done)
}

func (e *Engine) handleStart(c cmdStart) {
	if e.state != StateIdle {
		respond(c.result, ErrBusy)
		return
	}
	if e.program.Total() == 0 {
		respond(c.result, ErrEmpty)
		return
	}
	if c.transport == nil || !c.transport.Connected() {
		respond(c.result, ErrNotConnected)
		return
	}

	e.transport = c.transport
	e.lines = c.transport.Lines()
	e.ctx = c.ctx
	if e.ctx == nil {
		e.ctx = context.Background()
	}
	e.cursors = Cursors{Total: e.program.Total()}
	e.retry = RetryState{}
	e.pauseCause = ""
	e.executionCompleteFired = false
	e.quiesce.reset()
	e.retryBackOff = newRetryBackOff(e.tRetry)

	if e.stats == nil {
		e.stats = newRunStats(e.logger, e.Snapshot)
		e.stats.Start(e.effectiveStatsLogEach())
	}

	if e.checkMode && !e.checkModeActive {
		e.writeRealTimeLine("$C")
		e.checkModeActive = true
	}

	e.state = StateRunning
	e.logger.Info("streaming started", zap.Int("total", e.cursors.Total), zap.Stringer("state", e.state))
	respond(c.result, nil)

	e.pumpNext()
}

func (e *Engine) handlePause(c cmdPause) {
	if e.state != StateRunning {
		respond(c.result, ErrWrongState)
		return
	}

	e.cancelTimers()
	e.state = StatePaused
	e.pauseCause = c.reason
	e.logger.Info("streaming paused", zap.String("reason", c.reason), zap.Stringer("state", e.state))
	e.writeRealTime(RealTimeFeedHold)
	e.emit(PauseEvent{Reason: c.reason})
	respond(c.result, nil)
}

func (e *Engine) handleResume(c cmdResume) {
	if e.state != StatePaused {
		respond(c.result, ErrWrongState)
		return
	}

	e.state = StateRunning
	e.pauseCause = ""
	e.logger.Info("streaming resumed", zap.Stringer("state", e.state))
	e.writeRealTime(RealTimeCycleStart)
	e.emit(ResumeEvent{})
	respond(c.result, nil)

	if e.cursors.Total > 0 && e.cursors.Acknowledged == e.cursors.Total {
		// The last line was acknowledged while Paused: finish the send phase
		// that onOk deferred.
		e.state = StateDraining
		e.emit(CompleteEvent{Total: e.cursors.Total})
		return
	}

	e.pumpNext()
}

func (e *Engine) handleStop(c cmdStop) {
	switch e.state {
	case StateRunning, StatePaused, StateDraining:
		e.cancelTimers()
		e.writeRealTime(RealTimeFeedHold)
		e.writeRealTime(RealTimeSoftReset)
		if e.transport != nil {
			_ = e.transport.Flush(e.ctx)
		}
		if e.checkModeActive {
			e.writeRealTimeLine("$C")
			e.checkModeActive = false
		}
		e.state = StateStopping
		e.logger.Info("streaming stopped", zap.Int("sent", e.cursors.Sent), zap.Int("acknowledged", e.cursors.Acknowledged), zap.Stringer("state", e.state))
		e.emit(StopEvent{})
		e.state = StateIdle
		respond(c.result, nil)
	default:
		// Idempotent: stop from Idle/ExecutionComplete/Faulted is a no-op.
		respond(c.result, nil)
	}
}

func (e *Engine) handleStatusQuery(c cmdStatusQuery) {
	if e.transport == nil || !e.transport.Connected() {
		respond(c.result, ErrNotConnected)
		return
	}
	e.writeRealTime(RealTimeStatusQuery)
	respond(c.result, nil)
}

// pumpNext writes the next unsent line, if any, honoring the
// single-outstanding-line lock-step contract (spec.md §4.3).
func (e *Engine) pumpNext() {
	if e.state != StateRunning {
		return
	}
	if e.cursors.Acknowledged < e.cursors.Sent {
		// A line is already outstanding; wait for its Ok/Error/timeout.
		return
	}
	if e.cursors.Sent >= e.cursors.Total {
		return
	}

	line, ok := e.program.Line(e.cursors.Sent)
	if !ok {
		return
	}

	wire := e.composeWireLine(line)
	if e.traceEnabled() {
		e.logger.Debug("writing line", zap.Int("index", line.Index), zap.String("payload", line.Payload))
	}
	if err := e.transport.WriteLine(e.ctx, []byte(wire)); err != nil {
		e.emit(LineErrorEvent{Index: line.Index, Payload: line.Payload, Reason: err.Error()})
		e.state = StatePaused
		e.pauseCause = fmt.Sprintf("write error: %s", err)
		e.emit(PauseEvent{Reason: e.pauseCause})
		return
	}

	e.cursors.Sent++
	e.lastLineSentAt = time.Now()
	e.armResponseTimeout()
	e.emitProgress(false)

	SentLineNumber.SetUint64(uint64(e.cursors.Sent))
}

func (e *Engine) composeWireLine(line ProgramLine) string {
	if !e.useLineNumbers {
		return line.Payload + "\n"
	}
	wireLineNumber := e.lineNumberBase + line.Index
	return fmt.Sprintf("N%d %s\n", wireLineNumber, line.Payload)
}

func (e *Engine) writeRealTime(b byte) {
	if e.transport == nil {
		return
	}
	if err := e.transport.WriteRealTime(e.ctx, b); err != nil {
		e.logger.Warn("failed to write real-time command", zap.Uint8("byte", b), zap.Error(err))
	}
}

func (e *Engine) writeRealTimeLine(text string) {
	if e.transport == nil {
		return
	}
	if err := e.transport.WriteLine(e.ctx, []byte(text+"\n")); err != nil {
		e.logger.Warn("failed to write command", zap.String("text", text), zap.Error(err))
	}
}

// onLine classifies one inbound line and reacts to it (spec.md §4.3).
func (e *Engine) onLine(raw string) {
	if e.traceEnabled() {
		e.logger.Debug("received controller line", zap.String("raw", raw))
	}

	resp := ParseResponse(raw)

	switch resp.Kind {
	case ResponseOk:
		e.onOk()
	case ResponseError:
		e.onProtocolFailure(&ProtocolError{Code: resp.Code, HasCode: resp.HasCode, Text: resp.Text})
	case ResponseAlarm:
		e.onAlarm(&ProtocolError{Alarm: true, Code: resp.Code, HasCode: resp.HasCode, Text: resp.Text})
	case ResponseStatus:
		e.onStatus(resp.Status)
	case ResponseWelcome:
		e.onWelcome()
	case ResponseOther:
		e.emit(OtherEvent{Text: resp.Text})
	}
}

func (e *Engine) onOk() {
	if e.state != StateRunning && e.state != StatePaused {
		// The run has already ended (Stopped/Faulted/ExecutionComplete): a late
		// Ok for a prior in-flight line must never resurrect LineSuccess.
		return
	}

	if e.cursors.Acknowledged >= e.cursors.Sent {
		// No outstanding line: an extra/duplicate Ok. Out-of-order responses
		// are impossible under single-line lock-step; log and discard.
		e.logger.Warn("discarding unexpected Ok with no outstanding line")
		return
	}

	e.cancelTimers()
	if !e.lastLineSentAt.IsZero() && e.stats != nil {
		e.stats.RecordLatency(time.Since(e.lastLineSentAt))
	}

	index := e.cursors.Acknowledged
	line, _ := e.program.Line(index)

	e.cursors.Acknowledged++
	e.retry = RetryState{}
	e.retryBackOff.Reset()
	LineSuccessCount.Inc()
	AcknowledgedLineNumber.SetUint64(uint64(e.cursors.Acknowledged))

	e.emit(LineSuccessEvent{Index: line.Index, Payload: line.Payload})

	// The terminal 100%-sent value must always reach the sink even if it
	// lands inside a T_ui window, or an observer driving a UI off Percent
	// gets stuck below 100 after Complete fires (spec.md §4.4).
	terminal := e.cursors.Acknowledged == e.cursors.Total
	e.emitProgress(terminal)

	if e.state != StateRunning {
		// Paused freezes the pump but a late Ok still advances Acknowledged;
		// it must not pump the next line (spec.md §4.3).
		return
	}

	if terminal {
		e.state = StateDraining
		e.emit(CompleteEvent{Total: e.cursors.Total})
		return
	}

	e.pumpNext()
}

func (e *Engine) onProtocolFailure(protoErr *ProtocolError) {
	if e.state != StateRunning && e.state != StatePaused {
		return
	}

	LineErrorCount.Inc()

	index := e.cursors.Acknowledged
	line, _ := e.program.Line(index)

	e.cancelTimers()
	e.emit(LineErrorEvent{Index: line.Index, Payload: line.Payload, Reason: protoErr.Error()})

	if e.retry.AttemptsCurrentLine < e.maxRetries {
		e.retry.AttemptsCurrentLine++
		RetryCount.Inc()
		e.armRetryDelay()
		return
	}

	e.state = StatePaused
	e.pauseCause = "max retries"
	e.logger.Info("streaming paused", zap.String("reason", e.pauseCause), zap.Stringer("state", e.state))
	e.emit(PauseEvent{Reason: e.pauseCause})
}

func (e *Engine) onAlarm(protoErr *ProtocolError) {
	if e.state != StateRunning && e.state != StatePaused {
		return
	}

	index := e.cursors.Acknowledged
	line, _ := e.program.Line(index)

	e.cancelTimers()
	e.pauseCause = protoErr.Error()
	e.state = StatePaused
	e.logger.Info("streaming paused", zap.String("reason", e.pauseCause), zap.Stringer("state", e.state))
	e.emit(LineErrorEvent{Index: line.Index, Payload: line.Payload, Reason: protoErr.Error()})
	e.emit(PauseEvent{Reason: e.pauseCause})
}

func (e *Engine) onStatus(report StatusReport) {
	if e.traceEnabled() {
		e.logger.Debug("received status report", zap.Stringer("report", report))
	}

	e.emit(StatusUpdateEvent{Report: report})

	if report.HasExecutedLine {
		executed := report.ExecutedLine
		if executed > e.cursors.Total {
			executed = e.cursors.Total
		}
		if executed > e.cursors.Executed {
			e.cursors.Executed = executed
			ExecutedLineNumber.SetUint64(uint64(e.cursors.Executed))
			e.emitExecutionProgress(false)
		}
	}

	if e.state != StateDraining {
		return
	}

	drained := report.IsIdle() && e.cursors.Sent == e.cursors.Total && e.cursors.Acknowledged == e.cursors.Total
	if e.quiesce.Observe(drained) && !e.executionCompleteFired {
		e.executionCompleteFired = true
		e.cursors.Executed = e.cursors.Total
		ExecutedLineNumber.SetUint64(uint64(e.cursors.Executed))
		e.emitExecutionProgress(true)

		if e.checkModeActive {
			e.writeRealTimeLine("$C")
			e.checkModeActive = false
		}

		e.state = StateExecutionComplete
		e.logger.Info("execution complete", zap.Int("total", e.cursors.Total), zap.Stringer("state", e.state))
		e.emit(ExecutionCompleteEvent{Total: e.cursors.Total})
		e.state = StateIdle
	}
}

func (e *Engine) onWelcome() {
	if e.state == StateRunning || e.state == StatePaused || e.state == StateDraining {
		// The controller reset mid-run: catastrophic (spec.md §4.3, §7).
		e.cancelTimers()
		e.state = StateFaulted
		e.logger.Info("streaming faulted", zap.String("reason", "controller reset"), zap.Stringer("state", e.state))
		e.emit(ErrorEvent{Message: "controller reset"})
		return
	}
	// A Welcome banner observed before Start is consumed and ignored.
}

func (e *Engine) onReadClosed() {
	if e.state == StateRunning || e.state == StatePaused || e.state == StateDraining {
		e.cancelTimers()
		e.state = StateFaulted
		reason := NewTransportError(fmt.Errorf("transport read stream closed")).Error()
		e.logger.Info("streaming faulted", zap.String("reason", reason), zap.Stringer("state", e.state))
		e.emit(ErrorEvent{Message: reason})
	}
}

func (e *Engine) onResponseTimeout() {
	TimeoutCount.Inc()
	e.onProtocolFailure(&ProtocolError{Text: "timeout"})
}

func (e *Engine) onRetryFire() {
	if e.state != StateRunning && e.state != StatePaused {
		return
	}
	// The line currently in flight is always at index == Acknowledged under
	// the single-outstanding-line model: Sent was already incremented past
	// it when it was first written.
	index := e.cursors.Acknowledged
	line, ok := e.program.Line(index)
	if !ok {
		return
	}

	wire := e.composeWireLine(line)
	if e.traceEnabled() {
		e.logger.Debug("retransmitting line", zap.Int("index", line.Index), zap.String("payload", line.Payload))
	}
	if err := e.transport.WriteLine(e.ctx, []byte(wire)); err != nil {
		e.emit(LineErrorEvent{Index: line.Index, Payload: line.Payload, Reason: err.Error()})
		e.state = StatePaused
		e.pauseCause = fmt.Sprintf("write error: %s", err)
		e.emit(PauseEvent{Reason: e.pauseCause})
		return
	}

	e.lastLineSentAt = time.Now()
	e.armResponseTimeout()
}

func (e *Engine) armResponseTimeout() {
	if e.responseTimer != nil {
		e.responseTimer.Stop()
	}
	e.responseTimer = time.NewTimer(e.tResp)
}

func (e *Engine) armRetryDelay() {
	if e.retryTimer != nil {
		e.retryTimer.Stop()
	}
	delay := e.retryBackOff.NextBackOff()
	if e.traceEnabled() {
		e.logger.Debug("arming line retry", zap.Stringer("backoff", backOffStringer{e.retryBackOff}), zap.Duration("delay", delay))
	}
	e.retryTimer = time.NewTimer(delay)
}

func (e *Engine) cancelTimers() {
	if e.responseTimer != nil {
		e.responseTimer.Stop()
		e.responseTimer = nil
	}
	if e.retryTimer != nil {
		e.retryTimer.Stop()
		e.retryTimer = nil
	}
}

func (e *Engine) emit(evt Event) {
	if e.sink == nil {
		return
	}
	e.sink.OnEvent(evt)
}

// emitProgress applies the T_ui throttle (spec.md §4.4): at most one
// Progress per T_ui, except the terminal value which is always delivered.
func (e *Engine) emitProgress(terminal bool) {
	now := time.Now()
	if !terminal && now.Sub(e.lastProgressEmit) < e.tUI {
		return
	}
	e.lastProgressEmit = now
	e.emit(ProgressEvent{
		Sent:         e.cursors.Sent,
		Acknowledged: e.cursors.Acknowledged,
		Total:        e.cursors.Total,
		Percent:      e.cursors.SendPercent(),
	})
}

func (e *Engine) emitExecutionProgress(terminal bool) {
	now := time.Now()
	if !terminal && now.Sub(e.lastExecProgressEmit) < e.tUI {
		return
	}
	e.lastExecProgressEmit = now
	e.emit(ExecutionProgressEvent{
		Executed: e.cursors.Executed,
		Total:    e.cursors.Total,
		Percent:  e.cursors.ExecutionPercent(),
	})
}
