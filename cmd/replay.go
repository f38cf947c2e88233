package cmd

import (
	"github.com/spf13/cobra"

	"github.com/vipcxj/randfactory/internal/hostui"
)

func newReplayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "replay FILE",
		Short: "Replay a recorded host view-model event stream",
		Long: `Replay reads a YAML session (an initial model snapshot and a list of
view-model events), applies every event to the host window controls and
prints the resulting control state.`,
		Example: `  randfactory replay session.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := hostui.ReadSessionFile(args[0])
			if err != nil {
				return err
			}
			a.log.Debug("replaying session", "file", args[0], "events", len(session.Events))
			controls, err := session.Replay(a.log)
			if err != nil {
				return err
			}
			return controls.Print(cmd.OutOrStdout())
		},
	}
}
