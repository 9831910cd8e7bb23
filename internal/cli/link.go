package cli

import (
	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/link"
	"github.com/lgulich/dotfiles/pkg/paths"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newLinkCmd(opts *globalOptions) *cobra.Command {
	var home string

	cmd := &cobra.Command{
		Use:     "link",
		Short:   MsgLinkShort,
		Long:    MsgLinkLong,
		GroupID: groupCore,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := setupEnvironment(cmd, opts, nil)
			if err != nil {
				return err
			}

			if home == "" {
				home = env.paths.HomeDir()
			}
			home = paths.ExpandHome(home)

			log.Info().
				Str("root", env.paths.DotfilesRoot()).
				Str("home", home).
				Bool("dryRun", opts.dryRun).
				Msg("Linking dotfiles")

			report, err := link.Link(env.fs, env.paths.DotfilesRoot(), home, link.Options{
				Manifest: env.config.Symlink.Manifest,
				DryRun:   opts.dryRun,
			})
			if err != nil {
				return err
			}

			if err := env.renderer.RenderLinks(report); err != nil {
				return err
			}
			if !report.OverallSuccess {
				return &reportedError{err: errors.New(errors.ErrSymlinkCreate, MsgErrLinkFailed)}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&home, "home", "", MsgFlagHome)
	return cmd
}
