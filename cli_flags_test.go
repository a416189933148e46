package stream

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFlagsToSet(t *testing.T) {
	flagSet := pflag.NewFlagSet("", pflag.ContinueOnError)

	AddFlagsToSet(flagSet)

	var actualFlags []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		actualFlags = append(actualFlags, f.Name)
	})

	assert.ElementsMatch(t, []string{
		FlagPort,
		FlagBaud,
		FlagCheck,
		FlagMaxRetries,
		FlagNoLineNumbers,
		FlagResponseTimeout,
		FlagRetryDelay,
		FlagQuiesce,
	}, actualFlags)
}

func TestOptionsFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddFlagsToSet(cmd.Flags())

	require.NoError(t, cmd.Flags().Set(FlagMaxRetries, "7"))
	require.NoError(t, cmd.Flags().Set(FlagNoLineNumbers, "true"))
	require.NoError(t, cmd.Flags().Set(FlagCheck, "true"))
	require.NoError(t, cmd.Flags().Set(FlagResponseTimeout, "5s"))

	e := &Engine{}
	for _, opt := range OptionsFromFlags(cmd) {
		opt(e)
	}

	assert.Equal(t, 7, e.maxRetries)
	assert.False(t, e.useLineNumbers)
	assert.True(t, e.checkMode)
	assert.Equal(t, 5*time.Second, e.tResp)
}

func TestOptionsFromFlags_ZeroDurationsIgnored(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddFlagsToSet(cmd.Flags())

	require.NoError(t, cmd.Flags().Set(FlagRetryDelay, "0s"))
	require.NoError(t, cmd.Flags().Set(FlagQuiesce, "0s"))

	e := &Engine{tRetry: DefaultRetryDelay, tQuiesce: DefaultQuiesceDuration}
	for _, opt := range OptionsFromFlags(cmd) {
		opt(e)
	}

	assert.Equal(t, DefaultRetryDelay, e.tRetry)
	assert.Equal(t, DefaultQuiesceDuration, e.tQuiesce)
}

func TestPortConfigFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddFlagsToSet(cmd.Flags())

	require.NoError(t, cmd.Flags().Set(FlagPort, "/dev/ttyUSB0"))
	require.NoError(t, cmd.Flags().Set(FlagBaud, "9600"))

	port, baud := PortConfigFromFlags(cmd)
	assert.Equal(t, "/dev/ttyUSB0", port)
	assert.Equal(t, 9600, baud)
}

func TestPortConfigFromFlags_DefaultBaud(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	AddFlagsToSet(cmd.Flags())

	require.NoError(t, cmd.Flags().Set(FlagPort, "COM3"))

	port, baud := PortConfigFromFlags(cmd)
	assert.Equal(t, "COM3", port)
	assert.Equal(t, DefaultBaud, baud)
}
