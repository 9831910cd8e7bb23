package runner

import (
	"context"
	"time"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/logging"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/rs/zerolog"
)

// Observer is notified around every installer, in execution order
type Observer interface {
	TaskStarted(index, total int, task types.InstallTask)
	TaskFinished(index, total int, result types.RunResult)
}

// Options configures a Runner
type Options struct {
	Root     string
	Platform types.Platform
	DryRun   bool
	Executor Executor
	Observer Observer
}

// Runner executes installers sequentially. It keeps no state between runs.
type Runner struct {
	root     string
	platform types.Platform
	dryRun   bool
	executor Executor
	observer Observer
	logger   zerolog.Logger
}

// New creates a Runner. A nil Executor means child processes via ProcessExecutor.
func New(opts Options) *Runner {
	executor := opts.Executor
	if executor == nil {
		executor = NewProcessExecutor(opts.Root)
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	return &Runner{
		root:     opts.Root,
		platform: opts.Platform,
		dryRun:   opts.DryRun,
		executor: executor,
		observer: observer,
		logger:   logging.GetLogger("runner"),
	}
}

// Run executes tasks in order and always returns a report. The error is
// non-nil only when ctx was cancelled; remaining tasks are then listed as
// skipped.
func (r *Runner) Run(ctx context.Context, tasks []types.InstallTask) (*types.RunReport, error) {
	defer logging.LogOperationStart(r.logger, "run")()

	results := make([]types.RunResult, 0, len(tasks))
	var skipped []types.InstallTask

	for i, task := range tasks {
		if ctx.Err() != nil {
			skipped = append(skipped, tasks[i:]...)
			break
		}

		r.observer.TaskStarted(i, len(tasks), task)
		result := r.runOne(ctx, task)
		results = append(results, result)
		r.observer.TaskFinished(i, len(tasks), result)
	}

	report := types.NewRunReport(r.root, r.platform, results)
	report.DryRun = r.dryRun

	if err := ctx.Err(); err != nil {
		report.Cancelled = true
		report.Skipped = skipped
		r.logger.Warn().
			Int("completed", len(results)).
			Int("skipped", len(skipped)).
			Msg("Run interrupted")
		return report, errors.Wrap(err, errors.ErrCancelled, "run interrupted")
	}

	r.logger.Info().
		Int("total", len(results)).
		Int("failed", len(report.Failed())).
		Bool("success", report.OverallSuccess).
		Msg("Run completed")

	return report, nil
}

func (r *Runner) runOne(ctx context.Context, task types.InstallTask) types.RunResult {
	logger := r.logger.With().Str("topic", task.Topic).Str("path", task.Path).Logger()

	if r.dryRun {
		logger.Info().Msg("Dry run mode - installer would be executed")
		return types.NewRunResult(task, 0, 0)
	}

	logger.Info().Msg("Running installer")
	start := time.Now()
	code, launchErr := r.executor.Execute(ctx, task)
	result := types.NewRunResult(task, code, time.Since(start)).WithLaunchError(launchErr)

	event := logger.Info()
	if !result.Succeeded {
		event = logger.Warn()
	}
	event.Int("exitCode", code).Dur("duration", result.Duration).Msg("Installer finished")

	return result
}

type nopObserver struct{}

func (nopObserver) TaskStarted(int, int, types.InstallTask) {}
func (nopObserver) TaskFinished(int, int, types.RunResult)  {}
