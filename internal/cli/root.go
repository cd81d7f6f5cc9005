package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-sim/internal/app"
	"github.com/johnquangdev/meeting-sim/internal/infrastructure/mockserver"
	"github.com/johnquangdev/meeting-sim/pkg/config"
)

// Dependencies are shared by every command
type Dependencies struct {
	Config *config.Config
	Logger *zap.Logger
	In     io.Reader
	Out    io.Writer

	// App is built on first use so flags can adjust it
	App *app.App
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	var instant bool

	rootCmd := &cobra.Command{
		Use:           "meeting",
		Short:         "Simulate recording, transcribing and summarizing meetings",
		Long:          "An interactive front-end for the mock meeting backend: record a meeting, generate a canned transcription and derive a summary with action items.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if deps.App != nil {
				return nil
			}
			var opts []mockserver.Option
			if instant {
				opts = append(opts, mockserver.WithLatency(mockserver.Latency{}))
			}
			a, err := app.New(cmd.Context(), deps.Config, deps.Logger, opts...)
			if err != nil {
				return err
			}
			deps.App = a
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&instant, "instant", false, "resolve every backend call without simulated latency")

	if deps.In == nil {
		deps.In = os.Stdin
	}
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	rootCmd.SetIn(deps.In)
	rootCmd.SetOut(deps.Out)

	rootCmd.AddCommand(NewShellCmd(deps))
	rootCmd.AddCommand(NewDemoCmd(deps))
	rootCmd.AddCommand(NewListCmd(deps))

	return rootCmd
}
