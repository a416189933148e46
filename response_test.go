package stream

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Response
	}{
		{
			name: "ok",
			line: "ok",
			want: Response{Kind: ResponseOk, Raw: "ok"},
		},
		{
			name: "ok case insensitive with whitespace",
			line: "  OK\r",
			want: Response{Kind: ResponseOk, Raw: "  OK\r"},
		},
		{
			name: "numeric error",
			line: "error:9",
			want: Response{Kind: ResponseError, Code: 9, HasCode: true, Text: "9", Raw: "error:9"},
		},
		{
			name: "text error",
			line: "error:Expected command letter",
			want: Response{Kind: ResponseError, Text: "Expected command letter", Raw: "error:Expected command letter"},
		},
		{
			name: "numeric alarm",
			line: "ALARM:1",
			want: Response{Kind: ResponseAlarm, Code: 1, HasCode: true, Text: "1", Raw: "ALARM:1"},
		},
		{
			name: "welcome grbl",
			line: "Grbl 1.1h ['$' for help]",
			want: Response{Kind: ResponseWelcome, Text: "Grbl 1.1h ['$' for help]", Raw: "Grbl 1.1h ['$' for help]"},
		},
		{
			name: "welcome fluidnc",
			line: "FluidNC v3.7.1",
			want: Response{Kind: ResponseWelcome, Text: "FluidNC v3.7.1", Raw: "FluidNC v3.7.1"},
		},
		{
			name: "bracketed message is other",
			line: "[MSG:Caution: Unlocked]",
			want: Response{Kind: ResponseOther, Text: "[MSG:Caution: Unlocked]", Raw: "[MSG:Caution: Unlocked]"},
		},
		{
			name: "empty line is other",
			line: "",
			want: Response{Kind: ResponseOther, Text: "", Raw: ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseResponse(tt.line)
			require.Equal(t, tt.want.Kind, got.Kind)
			require.Equal(t, tt.want.Code, got.Code)
			require.Equal(t, tt.want.HasCode, got.HasCode)
			require.Equal(t, tt.want.Text, got.Text)
			require.Equal(t, tt.want.Raw, got.Raw)
		})
	}
}

func TestParseResponse_Status(t *testing.T) {
	resp := ParseResponse("<Idle|MPos:0.000,0.000,0.000|FS:0,0|WCO:0.000,0.000,0.000>")

	require.Equal(t, ResponseStatus, resp.Kind)
	require.Equal(t, "Idle", resp.Status.MachineState)
	require.True(t, resp.Status.HasMachinePosition)
	require.Equal(t, [3]float64{0, 0, 0}, resp.Status.MachinePosition)
	require.True(t, resp.Status.HasFeed)
	require.Equal(t, 0.0, resp.Status.Feed)
	require.True(t, resp.Status.HasWorkCoordOffset)
}

func TestParseResponse_StatusWithExecutedLine(t *testing.T) {
	resp := ParseResponse("<Run|MPos:1.000,2.000,3.000|FS:500,0|Ln:42|Bf:15,128|Ov:100,100,100>")

	require.Equal(t, ResponseStatus, resp.Kind)
	require.Equal(t, "Run", resp.Status.MachineState)
	require.True(t, resp.Status.HasExecutedLine)
	require.Equal(t, 42, resp.Status.ExecutedLine)
	require.Equal(t, "15,128", resp.Status.Buffer)
	require.Equal(t, "100,100,100", resp.Status.Override)
}

func TestParseResponse_StatusUnknownFieldIgnored(t *testing.T) {
	resp := ParseResponse("<Idle|Unknown:whatever|MPos:0,0,0>")

	require.Equal(t, ResponseStatus, resp.Kind)
	require.True(t, resp.Status.HasMachinePosition)
}

func TestParseResponse_MalformedStatusFallsBackToOther(t *testing.T) {
	resp := ParseResponse("<>")

	require.Equal(t, ResponseOther, resp.Kind)
}
