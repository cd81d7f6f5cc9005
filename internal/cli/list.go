package cli

import (
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-sim/internal/output"
	"github.com/johnquangdev/meeting-sim/internal/view"
)

func NewListCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List meetings",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(deps.Out)
			lv := view.NewListView(deps.App.Server, view.AlertFunc(formatter.Alert), deps.Logger)
			if err := lv.Load(cmd.Context()); err != nil {
				return err
			}
			formatter.Screen(view.RenderList(lv.Meetings(), false))
			return nil
		},
	}
}
