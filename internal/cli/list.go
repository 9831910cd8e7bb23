package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(opts *globalOptions) *cobra.Command {
	sel := &selection{}

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    MsgListLong,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setupEnvironment(cmd, opts, sel.overrides(cmd))
			if err != nil {
				return err
			}

			tasks, err := env.discover(*sel)
			if err != nil {
				return err
			}

			return env.renderer.RenderTasks(env.paths.DotfilesRoot(), env.platform, tasks)
		},
	}

	addSelectionFlags(cmd, opts, sel)
	return cmd
}
