package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/streamingfast/cli"
	. "github.com/streamingfast/cli"
	"github.com/streamingfast/logging"
	"go.uber.org/zap"

	stream "github.com/opencnc/gcode-streamer"
	"github.com/opencnc/gcode-streamer/transport/serial"
)

var zlog, tracer = logging.RootLogger("gcode-stream", "github.com/opencnc/gcode-streamer/cmd/gcode-stream")

func main() {
	logging.InstantiateLoggers()
	stream.RegisterMetrics()

	Run(
		"gcode-stream",
		"Stream a G-code program to a GRBL/FluidNC controller over serial",

		Command(streamRunE,
			"stream <file>",
			"Stream <file> to the controller and block until ExecutionComplete or Faulted",
			RangeArgs(1, 1),
			Flags(func(flags *pflag.FlagSet) {
				stream.AddFlagsToSet(flags)
			}),
		),

		OnCommandErrorLogAndExit(zlog),
	)
}

func streamRunE(cmd *cobra.Command, args []string) error {
	path := args[0]

	text, err := os.ReadFile(path)
	cli.NoError(err, "unable to read %q: %s", path, err)

	port, baud := stream.PortConfigFromFlags(cmd)
	cli.Ensure(port != "", "--port is required")

	transport, err := serial.Open(serial.Config{Port: port, Baud: baud})
	cli.NoError(err, "unable to open serial port %q: %s", port, err)
	defer transport.Close()

	exitCode := make(chan int, 1)

	sink := stream.EventSinkFunc(func(evt stream.Event) {
		switch e := evt.(type) {
		case stream.ProgressEvent:
			zlog.Info("progress", zap.Int("sent", e.Sent), zap.Int("acknowledged", e.Acknowledged), zap.Int("total", e.Total))
		case stream.LineErrorEvent:
			zlog.Warn("line error", zap.Int("index", e.Index), zap.String("reason", e.Reason))
		case stream.PauseEvent:
			zlog.Warn("paused", zap.String("reason", e.Reason))
		case stream.CompleteEvent:
			zlog.Info("all lines acknowledged, draining execution")
		case stream.ExecutionCompleteEvent:
			zlog.Info("execution complete")
			exitCode <- 0
		case stream.ErrorEvent:
			zlog.Error("fatal", zap.String("message", e.Message))
			exitCode <- 1
		}
	})

	engine := stream.NewEngine(zlog, tracer, sink, stream.OptionsFromFlags(cmd)...)
	defer engine.Close()

	engine.Load(string(text))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := engine.Start(ctx, transport); err != nil {
		return fmt.Errorf("start: %w", err)
	}

	select {
	case code := <-exitCode:
		if code != 0 {
			return fmt.Errorf("streaming run ended in Faulted state")
		}
		return nil
	case <-ctx.Done():
		_ = engine.Stop()
		return fmt.Errorf("interrupted")
	}
}
