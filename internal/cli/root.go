package cli

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/lgulich/dotfiles/internal/version"
	"github.com/lgulich/dotfiles/pkg/cobrax/topics"
	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/logging"
	"github.com/lgulich/dotfiles/pkg/ui"
	"github.com/lgulich/dotfiles/pkg/ui/styles"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Command group IDs
const (
	groupCore = "core"
	groupMisc = "misc"
)

// globalOptions holds the persistent flags shared by all commands
type globalOptions struct {
	verbosity int
	root      string
	platform  string
	format    string
	dryRun    bool

	// renderer is set once a command has resolved its environment
	renderer       ui.Renderer
	resolvedFormat ui.Format
}

// formatRenderer builds a renderer from the --format flag alone, for output
// that does not depend on the dotfiles root
func (o *globalOptions) formatRenderer(w io.Writer) (ui.Renderer, ui.Format, error) {
	format := ui.FormatAuto
	if o.format != "" {
		var err error
		if format, err = ui.ParseFormat(o.format); err != nil {
			return nil, format, err
		}
	}
	renderer, err := ui.NewRenderer(format, w)
	return renderer, format, err
}

// NewRootCmd creates and returns the root command. Running it without a
// subcommand runs the installers.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{})
}

func newRootCmd(opts *globalOptions) *cobra.Command {
	initTemplateFormatting()

	run := &runOptions{}

	rootCmd := &cobra.Command{
		Use:     "installer-run",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.String(),
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLoggerWithOutput(opts.verbosity, cmd.ErrOrStderr())
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstallers(cmd, opts, run)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	pf.StringVar(&opts.root, "root", "", MsgFlagRoot)
	pf.StringVar(&opts.platform, "platform", "", MsgFlagPlatform)
	pf.StringVar(&opts.format, "format", "", MsgFlagFormat)
	pf.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	_ = rootCmd.RegisterFlagCompletionFunc("platform", platformCompletion)
	_ = rootCmd.RegisterFlagCompletionFunc("format", formatCompletion)

	addSelectionFlags(rootCmd, opts, &run.selection)
	rootCmd.Flags().DurationVar(&run.timeout, "timeout", 0, MsgFlagTimeout)
	rootCmd.Flags().StringVar(&run.reportFile, "report", "", MsgFlagReport)

	rootCmd.AddGroup(&cobra.Group{ID: groupCore, Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: groupMisc, Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newListCmd(opts))
	rootCmd.AddCommand(newLinkCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd(opts))
	rootCmd.AddCommand(newCompletionCmd())

	topicsFS, err := fs.Sub(embeddedTopics, "topics")
	if err == nil {
		tm, err := topics.InitializeWithOptions(rootCmd, topicsFS, topics.Options{
			Extensions: []string{".md", ".txt"},
			Renderer:   topicRenderer(),
		})
		if err == nil {
			rootCmd.AddCommand(newTopicsCmd(tm))
		}
	}
	rootCmd.SetHelpCommandGroupID(groupMisc)

	return rootCmd
}

// reportedError marks a failure whose details were already rendered
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

// Execute runs the command line and returns the process exit code
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &globalOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		if _, reported := err.(*reportedError); !reported {
			printError(opts, err, stdout, stderr)
		}
	}
	return errors.ExitCode(err)
}

// printError writes err to stderr, or as a JSON document to stdout when
// JSON output was requested
func printError(opts *globalOptions, err error, stdout, stderr io.Writer) {
	renderer := opts.renderer
	format := opts.resolvedFormat
	if renderer == nil {
		renderer, format, _ = opts.formatRenderer(stdout)
	}

	if renderer != nil && format == ui.FormatJSON {
		if renderErr := renderer.RenderError(err); renderErr == nil {
			return
		}
	}
	_, _ = fmt.Fprintln(stderr, styles.Render(styles.Error, fmt.Sprintf("Error: %v", err)))
}
