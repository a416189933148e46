package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLatencyAverage_Add(t *testing.T) {
	avg := newLatencyAverage("line_round_trip", 3)

	avg.Add(100 * time.Millisecond)
	require.Equal(t, 1, avg.Entries())
	require.Equal(t, 100*time.Millisecond, avg.Average)

	avg.Add(200 * time.Millisecond)
	avg.Add(300 * time.Millisecond)
	require.Equal(t, 3, avg.Entries())
	require.Equal(t, 200*time.Millisecond, avg.Average)

	// Adding a fourth sample evicts the oldest (100ms), leaving 200/300/400.
	avg.Add(400 * time.Millisecond)
	require.Equal(t, 3, avg.Entries())
	require.Equal(t, 300*time.Millisecond, avg.Average)
}

func TestLatencyAverage_Reset(t *testing.T) {
	avg := newLatencyAverage("line_round_trip", 3)
	avg.Add(100 * time.Millisecond)
	avg.Reset()

	require.Equal(t, 0, avg.Entries())
	require.Equal(t, time.Duration(0), avg.Average)
}

func TestLatencyAverage_String(t *testing.T) {
	avg := newLatencyAverage("line_round_trip", 3)
	avg.Add(100 * time.Millisecond)

	require.Equal(t, "line_round_trip: 100ms", avg.String())
}
