package cli

import (
	"fmt"

	"github.com/lgulich/dotfiles/pkg/config"
	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/spf13/cobra"
)

func newConfigCmd(opts *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if defaults {
				_, err := fmt.Fprint(cmd.OutOrStdout(), config.DefaultConfigContent())
				return err
			}

			env, err := setupEnvironment(cmd, opts, nil)
			if err != nil {
				return err
			}

			data, err := env.config.ToTOML()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
			}

			out := cmd.OutOrStdout()
			if env.config.Source != "" {
				_, _ = fmt.Fprintf(out, MsgConfigSource, env.config.Source)
			}
			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, "print the built-in defaults file instead")
	return cmd
}
