package stream

import "time"

// Option configures an Engine at construction time. Grounded on the
// teacher's sinker_options.go functional-options set.
type Option func(e *Engine)

// WithMaxRetries sets the per-line retry budget before pausing (spec.md §6,
// default 3).
func WithMaxRetries(maxRetries int) Option {
	return func(e *Engine) {
		e.maxRetries = maxRetries
	}
}

// WithResponseTimeout sets the per-line response timeout (spec.md §6,
// default 30s).
func WithResponseTimeout(timeout time.Duration) Option {
	return func(e *Engine) {
		e.tResp = timeout
	}
}

// WithRetryDelay sets the delay before retransmitting a line after an
// controller error or response timeout (spec.md §6, default 1s). Alarms are
// not retried.
func WithRetryDelay(delay time.Duration) Option {
	return func(e *Engine) {
		e.tRetry = delay
	}
}

// WithQuiesceDuration sets how long the controller must continuously report
// Idle with fully-drained cursors before ExecutionComplete fires (spec.md
// §6, default 2s).
func WithQuiesceDuration(duration time.Duration) Option {
	return func(e *Engine) {
		e.tQuiesce = duration
	}
}

// WithUIThrottle sets the minimum interval between throttled Progress /
// ExecutionProgress events (spec.md §6, default 250ms).
func WithUIThrottle(interval time.Duration) Option {
	return func(e *Engine) {
		e.tUI = interval
	}
}

// WithLineNumbers toggles whether outbound lines are prefixed `N<k>`
// (spec.md §6, default true).
func WithLineNumbers(enabled bool) Option {
	return func(e *Engine) {
		e.useLineNumbers = enabled
	}
}

// WithLineNumberBase sets the starting value for `N<k>` numbering (spec.md
// §6, default 1).
func WithLineNumberBase(base int) Option {
	return func(e *Engine) {
		e.lineNumberBase = base
	}
}

// WithCheckMode requests that the controller's check (dry-run) mode be
// toggled on for the run via `$C`, symmetrically enabled at Start and
// disabled at the run's terminal transition (spec.md §6, §9 Open Question 1).
func WithCheckMode(enabled bool) Option {
	return func(e *Engine) {
		e.checkMode = enabled
	}
}

// WithStatsLogInterval sets the cadence of the periodic stats log line
// (default 15s, 5s under Debug tracing, mirroring the teacher's logEach).
func WithStatsLogInterval(interval time.Duration) Option {
	return func(e *Engine) {
		e.statsLogEach = interval
	}
}
