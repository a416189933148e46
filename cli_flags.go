package stream

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/streamingfast/cli/sflags"
)

// Flag names for the reference CLI surface (spec.md §6: CLI is deliberately
// out of scope for the core engine, but a reference CLI is expected to
// expose these). Grounded on the teacher's sinker_viper.go AddFlagsToSet /
// NewFromViper pair, retargeted from gRPC/substreams flags to serial/engine
// flags.
const (
	FlagPort           = "port"
	FlagBaud           = "baud"
	FlagCheck          = "check"
	FlagMaxRetries     = "max-retries"
	FlagNoLineNumbers  = "no-line-numbers"
	FlagResponseTimeout = "response-timeout"
	FlagRetryDelay      = "retry-delay"
	FlagQuiesce         = "quiesce"
)

// AddFlagsToSet registers the reference CLI's flags (spec.md §6: `stream
// <file>`, `--baud`, `--port`, `--check`, `--max-retries`,
// `--no-line-numbers`).
func AddFlagsToSet(flags *pflag.FlagSet) {
	flags.String(FlagPort, "", "Serial device to stream to, e.g. /dev/ttyUSB0 or COM3 (required)")
	flags.Int(FlagBaud, 115200, "Serial baud rate")
	flags.Bool(FlagCheck, false, "Enable controller check (dry-run) mode for the run via $C")
	flags.Int(FlagMaxRetries, DefaultMaxRetries, "Per-line retry budget before pausing")
	flags.Bool(FlagNoLineNumbers, false, "Disable N<k> line-number prefixing on outbound lines")
	flags.Duration(FlagResponseTimeout, DefaultResponseTimeout, "Per-line response timeout")
	flags.Duration(FlagRetryDelay, DefaultRetryDelay, "Delay before retransmitting a failed line")
	flags.Duration(FlagQuiesce, DefaultQuiesceDuration, "Idle status duration required before declaring ExecutionComplete")
}

// OptionsFromFlags builds the Option set a reference CLI passes to NewEngine,
// reading values registered by AddFlagsToSet off of cmd.
func OptionsFromFlags(cmd *cobra.Command) []Option {
	var opts []Option

	if sflags.FlagDefined(cmd, FlagMaxRetries) {
		opts = append(opts, WithMaxRetries(sflags.MustGetInt(cmd, FlagMaxRetries)))
	}
	if sflags.FlagDefined(cmd, FlagNoLineNumbers) {
		opts = append(opts, WithLineNumbers(!sflags.MustGetBool(cmd, FlagNoLineNumbers)))
	}
	if sflags.FlagDefined(cmd, FlagCheck) {
		opts = append(opts, WithCheckMode(sflags.MustGetBool(cmd, FlagCheck)))
	}
	if sflags.FlagDefined(cmd, FlagResponseTimeout) {
		if d := sflags.MustGetDuration(cmd, FlagResponseTimeout); d > 0 {
			opts = append(opts, WithResponseTimeout(d))
		}
	}
	if sflags.FlagDefined(cmd, FlagRetryDelay) {
		if d := sflags.MustGetDuration(cmd, FlagRetryDelay); d > 0 {
			opts = append(opts, WithRetryDelay(d))
		}
	}
	if sflags.FlagDefined(cmd, FlagQuiesce) {
		if d := sflags.MustGetDuration(cmd, FlagQuiesce); d > 0 {
			opts = append(opts, WithQuiesceDuration(d))
		}
	}

	return opts
}

// PortConfigFromFlags extracts the serial port name and baud rate registered
// by AddFlagsToSet.
func PortConfigFromFlags(cmd *cobra.Command) (port string, baud int) {
	port = sflags.MustGetString(cmd, FlagPort)
	baud = DefaultBaud
	if sflags.FlagDefined(cmd, FlagBaud) {
		if b := sflags.MustGetInt(cmd, FlagBaud); b > 0 {
			baud = b
		}
	}
	return port, baud
}

// DefaultBaud is the fallback baud rate when --baud is unset or non-positive.
const DefaultBaud = 115200
