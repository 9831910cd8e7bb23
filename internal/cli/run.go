package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/runner"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/lgulich/dotfiles/pkg/ui"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// runOptions holds the flags of the root command
type runOptions struct {
	selection  selection
	timeout    time.Duration
	reportFile string
}

func runInstallers(cmd *cobra.Command, opts *globalOptions, run *runOptions) error {
	if run.reportFile != "" {
		if _, err := reportMarshaler(run.reportFile); err != nil {
			return err
		}
	}

	extra := run.selection.overrides(cmd)
	if cmd.Flags().Changed("timeout") {
		extra["timeout"] = run.timeout.String()
	}

	env, err := setupEnvironment(cmd, opts, extra)
	if err != nil {
		return err
	}

	tasks, err := env.discover(run.selection)
	if err != nil {
		return err
	}

	executor := runner.NewProcessExecutor(env.paths.DotfilesRoot())
	executor.Stdin = cmd.InOrStdin()
	executor.Stdout = cmd.OutOrStdout()
	executor.Stderr = cmd.ErrOrStderr()
	executor.Timeout = env.config.Timeout
	if env.format == ui.FormatJSON {
		// Keep stdout a single JSON document.
		executor.Stdout = cmd.ErrOrStderr()
	}

	r := runner.New(runner.Options{
		Root:     env.paths.DotfilesRoot(),
		Platform: env.platform,
		DryRun:   opts.dryRun,
		Executor: executor,
		Observer: env.renderer,
	})

	report, runErr := r.Run(cmd.Context(), tasks)
	if err := env.renderer.RenderReport(report); err != nil {
		return err
	}

	if run.reportFile != "" {
		if err := writeReport(run.reportFile, report); err != nil {
			return err
		}
	}

	if runErr != nil {
		return &reportedError{err: runErr}
	}
	if !report.OverallSuccess {
		return &reportedError{err: errors.New(errors.ErrTaskExecution, MsgErrRunFailed).
			WithDetail("failed", report.FailedTopics())}
	}
	return nil
}

// reportMarshaler picks the encoding of a report file from its extension
func reportMarshaler(path string) (func(interface{}) ([]byte, error), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return func(v interface{}) ([]byte, error) {
			return json.MarshalIndent(v, "", "  ")
		}, nil
	case ".yaml", ".yml":
		return yaml.Marshal, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, MsgErrReportExt, path).
			WithDetail("path", path)
	}
}

func writeReport(path string, report *types.RunReport) error {
	marshal, err := reportMarshaler(path)
	if err != nil {
		return err
	}

	data, err := marshal(report)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to encode report")
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "failed to create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write report to %s", path).
			WithDetail("path", path)
	}
	return nil
}
