package stream

import "github.com/streamingfast/dmetrics"

// RegisterMetrics registers the package's Prometheus collectors. Call once
// per process, typically from cmd/gcode-stream's main.
func RegisterMetrics() {
	metrics.Register()
}

var metrics = dmetrics.NewSet()

var SentLineNumber = metrics.NewHeadBlockNumber("gcode_stream_sent_line")
var AcknowledgedLineNumber = metrics.NewHeadBlockNumber("gcode_stream_acknowledged_line")
var ExecutedLineNumber = metrics.NewHeadBlockNumber("gcode_stream_executed_line")

var LineErrorCount = metrics.NewCounter("gcode_stream_line_error", "The number of controller Error responses and response timeouts observed for a line")
var RetryCount = metrics.NewCounter("gcode_stream_retry", "The number of line retransmissions scheduled due to error or timeout")
var TimeoutCount = metrics.NewCounter("gcode_stream_timeout", "The number of response timeouts observed waiting for Ok/Error")
var LineSuccessCount = metrics.NewCounter("gcode_stream_line_success", "The number of lines successfully acknowledged")
