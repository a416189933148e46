package stream

import "time"

// quiesceTracker decides when the controller has gone idle for long enough,
// continuously, to declare ExecutionComplete (spec.md §4.3): state == Idle,
// Sent == Acknowledged == Total, sustained for t_quiesce with no interruption.
//
// Grounded on the teacher's LivenessChecker (a sticky bool plus a duration
// threshold and a nowFunc seam for deterministic tests), repurposed from
// "block timestamp is recent enough to call live" to "idle status has
// persisted long enough to call execution complete".
type quiesceTracker struct {
	threshold time.Duration
	nowFunc   func() time.Time

	quiesced   bool
	sinceFirst time.Time
	sawAny     bool
}

func newQuiesceTracker(threshold time.Duration) *quiesceTracker {
	return &quiesceTracker{
		threshold: threshold,
		nowFunc:   time.Now,
	}
}

// Observe records one status report during Draining. It returns true the
// moment the idle/drained condition has held continuously for threshold;
// once true it stays true until reset.
func (q *quiesceTracker) Observe(drained bool) bool {
	if q.quiesced {
		return true
	}

	if !drained {
		q.sawAny = false
		return false
	}

	now := q.nowFunc()
	if !q.sawAny {
		q.sawAny = true
		q.sinceFirst = now
		return false
	}

	if now.Sub(q.sinceFirst) >= q.threshold {
		q.quiesced = true
	}

	return q.quiesced
}

// reset clears tracker state for a new run.
func (q *quiesceTracker) reset() {
	q.quiesced = false
	q.sawAny = false
}
