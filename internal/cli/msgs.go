package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Run the platform installers of a dotfiles repository"
	MsgListShort       = "List the installers a run would execute"
	MsgLinkShort       = "Install the symlinks declared in symlink.yaml files"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics, or a single topic when a name is given."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgConfigSource = "# loaded from %s\n"
	MsgVersion      = "installer-run %s"

	// Error messages
	MsgErrInitPaths   = "failed to initialize paths"
	MsgErrLoadConfig  = "failed to load configuration"
	MsgErrRunFailed   = "one or more installers failed"
	MsgErrLinkFailed  = "one or more symlinks could not be installed"
	MsgErrReportExt   = "unsupported report file %q: use .json, .yaml or .yml"
	MsgErrUnknownHelp = "unknown help topic %q"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun   = "Show what would be done without doing it"
	MsgFlagRoot     = "Dotfiles root (default: $DOTFILES, the enclosing git repository, or the current directory)"
	MsgFlagPlatform = "Installer platform: ubuntu or darwin (default: detected)"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagOnly     = "Only run installers of these topics"
	MsgFlagSkip     = "Skip installers of these topics"
	MsgFlagTimeout  = "Per installer time limit, 0 for none"
	MsgFlagReport   = "Also write the run report to this .json or .yaml file"
	MsgFlagHome     = "Home directory symlink destinations are relative to (default: $HOME)"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/root-example.txt
	msgRootExampleRaw string
	MsgRootExample    = strings.TrimRight(msgRootExampleRaw, "\n")

	//go:embed msgs/list-long.txt
	msgListLongRaw string
	MsgListLong    = strings.TrimSpace(msgListLongRaw)

	//go:embed msgs/link-long.txt
	msgLinkLongRaw string
	MsgLinkLong    = strings.TrimSpace(msgLinkLongRaw)

	//go:embed msgs/config-long.txt
	msgConfigLongRaw string
	MsgConfigLong    = strings.TrimSpace(msgConfigLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/fallback-warning.txt
	msgFallbackWarningRaw string
	MsgFallbackWarning    = strings.TrimSpace(msgFallbackWarningRaw) + "\n"

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
