package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestQuiesceTracker_Observe(t *testing.T) {
	tnow, _ := time.Parse(time.RFC3339, "2023-01-01T00:00:00Z")
	clock := tnow

	tracker := newQuiesceTracker(3 * time.Second)
	tracker.nowFunc = func() time.Time { return clock }

	require.False(t, tracker.Observe(true)) // first observation, starts the window

	clock = clock.Add(1 * time.Second)
	require.False(t, tracker.Observe(true))

	clock = clock.Add(1 * time.Second)
	require.False(t, tracker.Observe(true))

	clock = clock.Add(1 * time.Second)
	require.True(t, tracker.Observe(true)) // threshold reached

	clock = clock.Add(10 * time.Second)
	require.True(t, tracker.Observe(true)) // stays true once quiesced
}

func TestQuiesceTracker_InterruptionResetsWindow(t *testing.T) {
	tnow, _ := time.Parse(time.RFC3339, "2023-01-01T00:00:00Z")
	clock := tnow

	tracker := newQuiesceTracker(3 * time.Second)
	tracker.nowFunc = func() time.Time { return clock }

	require.False(t, tracker.Observe(true))
	clock = clock.Add(2 * time.Second)
	require.False(t, tracker.Observe(true))

	require.False(t, tracker.Observe(false)) // interrupted, window resets

	clock = clock.Add(1 * time.Second)
	require.False(t, tracker.Observe(true)) // restarts the window

	clock = clock.Add(3 * time.Second)
	require.True(t, tracker.Observe(true))
}

func TestQuiesceTracker_Reset(t *testing.T) {
	tracker := newQuiesceTracker(time.Second)
	tracker.quiesced = true
	tracker.sawAny = true

	tracker.reset()

	require.False(t, tracker.quiesced)
	require.False(t, tracker.sawAny)
}
