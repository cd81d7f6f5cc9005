package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-sim/internal/output"
)

// DemoScript is the walkthrough run by the demo command
var DemoScript = []string{
	"new Sprint Review | John Doe, Jane Smith",
	"record",
	"play",
	"transcribe",
	"summarize",
	"toggle 1",
	"toggle 1",
	"back",
}

// RunScript feeds each line to the shell, echoing it first. Command errors
// are printed and the script continues.
func RunScript(ctx context.Context, s *Shell, f *output.Formatter, script []string) error {
	if err := s.List().Load(ctx); err != nil {
		return fmt.Errorf("loading meetings: %w", err)
	}
	for _, line := range script {
		f.Prompt(s.promptLabel())
		fmt.Fprintln(f.Writer(), line)
		if err := s.Exec(ctx, line); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			f.Error(err.Error())
		}
	}
	return nil
}

func NewDemoCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the Sprint Review walkthrough end to end",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(deps.Out)
			shell := NewShell(deps.App.Server, formatter, deps.Logger)
			if err := RunScript(cmd.Context(), shell, formatter, DemoScript); err != nil {
				return err
			}
			formatter.Success("Demo complete")
			return nil
		},
	}
}
