package cli

import (
	"fmt"
	"strings"

	"github.com/lgulich/dotfiles/pkg/config"
	"github.com/lgulich/dotfiles/pkg/discovery"
	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/filesystem"
	"github.com/lgulich/dotfiles/pkg/paths"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/lgulich/dotfiles/pkg/ui"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// environment is everything a command needs after flags, paths and config
// have been resolved
type environment struct {
	paths    paths.Paths
	config   *config.Config
	platform types.Platform
	format   ui.Format
	renderer ui.Renderer
	fs       types.FS
}

// setupEnvironment resolves the dotfiles root, loads the layered config and
// builds the renderer. extra holds command specific config overrides.
func setupEnvironment(cmd *cobra.Command, opts *globalOptions, extra map[string]interface{}) (*environment, error) {
	p, err := paths.New(opts.root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, MsgErrInitPaths)
	}
	if p.UsedFallback() {
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgFallbackWarning, p.DotfilesRoot())
	}

	overrides := make(map[string]interface{})
	if cmd.Flags().Changed("platform") {
		overrides["platform"] = opts.platform
	}
	if cmd.Flags().Changed("format") {
		overrides["format"] = opts.format
	}
	for k, v := range extra {
		overrides[k] = v
	}

	cfg, err := config.Load(p.DotfilesRoot(), overrides)
	if err != nil {
		return nil, err
	}

	platform, err := resolvePlatform(cfg.Platform)
	if err != nil {
		return nil, err
	}

	format, err := ui.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	opts.renderer = renderer
	opts.resolvedFormat = format

	log.Info().
		Str("root", p.DotfilesRoot()).
		Str("platform", platform.String()).
		Str("format", format.String()).
		Str("config", cfg.Source).
		Msg("Environment resolved")

	return &environment{
		paths:    p,
		config:   cfg,
		platform: platform,
		format:   format,
		renderer: renderer,
		fs:       filesystem.NewOS(),
	}, nil
}

func resolvePlatform(name string) (types.Platform, error) {
	if name == "" || strings.EqualFold(name, "auto") {
		return types.DetectPlatform()
	}
	return types.ParsePlatform(name)
}

// discover finds and filters the installers for the environment
func (e *environment) discover(sel selection) ([]types.InstallTask, error) {
	tasks, err := discovery.DiscoverWithOptions(e.fs, e.paths.DotfilesRoot(), e.platform, discovery.Options{
		Ignore: e.config.Ignore,
	})
	if err != nil {
		return nil, err
	}
	return discovery.SelectTopics(tasks, sel.only, e.config.Skip)
}

// selection holds the topic filters
type selection struct {
	only []string
	skip []string
}

// overrides returns the config keys set by the selection flags
func (s selection) overrides(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	if cmd.Flags().Changed("skip") {
		out["skip"] = s.skip
	}
	return out
}

func addSelectionFlags(cmd *cobra.Command, opts *globalOptions, sel *selection) {
	cmd.Flags().StringSliceVar(&sel.only, "only", nil, MsgFlagOnly)
	cmd.Flags().StringSliceVar(&sel.skip, "skip", nil, MsgFlagSkip)

	complete := topicCompletion(opts)
	_ = cmd.RegisterFlagCompletionFunc("only", complete)
	_ = cmd.RegisterFlagCompletionFunc("skip", complete)
}

// topicCompletion completes topic names of the installers for the
// selected root and platform
func topicCompletion(opts *globalOptions) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		env, err := setupEnvironment(cmd, opts, nil)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		tasks, err := discovery.DiscoverWithOptions(env.fs, env.paths.DotfilesRoot(), env.platform, discovery.Options{
			Ignore: env.config.Ignore,
		})
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return discovery.TopicNames(tasks), cobra.ShellCompDirectiveNoFileComp
	}
}

func platformCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	names := []string{"auto"}
	for _, p := range types.Platforms {
		names = append(names, p.String())
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func formatCompletion(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return ui.FormatNames, cobra.ShellCompDirectiveNoFileComp
}
