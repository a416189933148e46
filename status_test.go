package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatusReport_IsIdle(t *testing.T) {
	require.True(t, StatusReport{MachineState: "Idle"}.IsIdle())
	require.False(t, StatusReport{MachineState: "Run"}.IsIdle())
	require.False(t, StatusReport{}.IsIdle())
}

func TestStatusReport_String(t *testing.T) {
	require.Equal(t, "<Idle|MPos:0,0,0>", StatusReport{Raw: "<Idle|MPos:0,0,0>"}.String())
	require.Equal(t, "<Idle>", StatusReport{MachineState: "Idle"}.String())
}
