package stream

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseProgram(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple",
			text: "G0 X0 Y0\nG1 X10 F500\n",
			want: []string{"G0 X0 Y0", "G1 X10 F500"},
		},
		{
			name: "strips semicolon comments",
			text: "G0 X0 ; move home\nG1 X10 ; feed\n",
			want: []string{"G0 X0", "G1 X10"},
		},
		{
			name: "strips parenthesized comments",
			text: "G0 X0 (move home) Y0\n(entire line is a comment)\nG1 X10\n",
			want: []string{"G0 X0  Y0", "G1 X10"},
		},
		{
			name: "drops blank lines",
			text: "G0 X0\n\n\nG1 X10\n",
			want: []string{"G0 X0", "G1 X10"},
		},
		{
			name: "strips pre-existing line numbers",
			text: "N10 G0 X0\nN20 G1 X10\n",
			want: []string{"G0 X0", "G1 X10"},
		},
		{
			name: "empty program",
			text: "",
			want: []string{},
		},
		{
			name: "only comments",
			text: "; nothing here\n(also nothing)\n",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program := ParseProgram(tt.text)
			require.Equal(t, len(tt.want), program.Total())

			for i, payload := range tt.want {
				line, ok := program.Line(i)
				require.True(t, ok)
				require.Equal(t, i, line.Index)
				require.Equal(t, payload, line.Payload)
			}
		})
	}
}

func TestParseProgram_IsIdempotentOnReStreamedText(t *testing.T) {
	first := ParseProgram("G0 X0\nG1 X10\n")

	var rewired string
	for i := 0; i < first.Total(); i++ {
		line, _ := first.Line(i)
		rewired += "N" + strconv.Itoa(i+1) + " " + line.Payload + "\n"
	}

	second := ParseProgram(rewired)
	require.Equal(t, first.Total(), second.Total())
	for i := 0; i < first.Total(); i++ {
		a, _ := first.Line(i)
		b, _ := second.Line(i)
		require.Equal(t, a.Payload, b.Payload)
	}
}

func TestProgram_LineOutOfRange(t *testing.T) {
	program := ParseProgram("G0 X0\n")

	_, ok := program.Line(-1)
	require.False(t, ok)

	_, ok = program.Line(1)
	require.False(t, ok)
}

func TestProgram_NilReceiver(t *testing.T) {
	var program *Program
	require.Equal(t, 0, program.Total())

	_, ok := program.Line(0)
	require.False(t, ok)
}
