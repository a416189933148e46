package stream

import (
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// backOffStringer renders a backoff.BackOff for logging. Kept close to the
// teacher's BackOffStringer, which is already generic over any backoff
// strategy; the engine only ever constructs a ConstantBackOff for T_retry,
// but the stringer stays general so it keeps working if that changes.
type backOffStringer struct{ backoff.BackOff }

func (s backOffStringer) String() string {
	switch v := s.BackOff.(type) {
	case *backoff.ZeroBackOff:
		return "Retry Immediately"
	case *backoff.StopBackOff:
		return "Stop Immediately"
	case *backoff.ConstantBackOff:
		return fmt.Sprintf("Wait Constantly %s", v.Interval)
	case *backoff.ExponentialBackOff:
		return fmt.Sprintf("Wait Exponentially (interval: %s, max interval: %s, max elapsed time: %s)", v.InitialInterval, v.MaxInterval, v.MaxElapsedTime)
	default:
		return fmt.Sprintf("%T", v)
	}
}

// newRetryBackOff builds the fixed-delay retry schedule for a single line
// (spec.md §4.3: attempt, wait t_retry, retransmit). Generalized from the
// teacher's exponential per-connection backoff (sinker.go's run()) to the
// engine's fixed-delay per-line budget; the max_retries bound itself is
// tracked directly by the pump's RetryState, not by this BackOff.
func newRetryBackOff(delay time.Duration) backoff.BackOff {
	return backoff.NewConstantBackOff(delay)
}
