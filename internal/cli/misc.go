package cli

import (
	"embed"
	"fmt"

	"github.com/lgulich/dotfiles/internal/version"
	"github.com/lgulich/dotfiles/pkg/cobrax/topics"
	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/spf13/cobra"
)

//go:embed topics
var embeddedTopics embed.FS

// topicRenderer uses glamour on a terminal and plain markdown otherwise
func topicRenderer() topics.Renderer {
	if stdoutIsTerminal() {
		return topics.NewGlamourRenderer()
	}
	return &topics.PlainRenderer{}
}

func newVersionCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: groupMisc,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderer, _, err := opts.formatRenderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderMessage(fmt.Sprintf(MsgVersion, version.String()))
		},
	}
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics [topic]",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: groupMisc,
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return tm.ListTopics(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return tm.PrintTopics(cmd.OutOrStdout())
			}
			topic, ok := tm.GetTopic(args[0])
			if !ok {
				return errors.Newf(errors.ErrNotFound, MsgErrUnknownHelp, args[0]).
					WithDetail("available", tm.ListTopics())
			}
			return tm.RenderTopic(cmd.OutOrStdout(), topic)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               groupMisc,
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
