package runner

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"
	"time"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/logging"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/rs/zerolog"
)

// Environment exported to every installer
const (
	EnvDotfiles = "DOTFILES"
	EnvTopic    = "INSTALLER_TOPIC"
	EnvPlatform = "INSTALLER_PLATFORM"
)

// DefaultGracePeriod is how long an interrupted installer may take to exit
// before it is killed
const DefaultGracePeriod = 5 * time.Second

// Executor runs a single installer and reports its exit code.
// A non-nil error means the installer could not be launched; the exit code
// is still meaningful in that case.
type Executor interface {
	Execute(ctx context.Context, task types.InstallTask) (int, error)
}

// ProcessExecutor runs installers as child processes sharing the caller's
// standard streams, so interactive prompts keep working
type ProcessExecutor struct {
	Root        string
	Stdin       io.Reader
	Stdout      io.Writer
	Stderr      io.Writer
	Timeout     time.Duration
	GracePeriod time.Duration

	logger zerolog.Logger
}

// NewProcessExecutor creates an executor wired to the process' own streams
func NewProcessExecutor(root string) *ProcessExecutor {
	return &ProcessExecutor{
		Root:        root,
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		GracePeriod: DefaultGracePeriod,
		logger:      logging.GetLogger("runner.executor"),
	}
}

// Execute implements Executor
func (e *ProcessExecutor) Execute(ctx context.Context, task types.InstallTask) (int, error) {
	taskCtx := ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		taskCtx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(taskCtx, task.Path)
	cmd.Dir = filepath.Dir(task.Path)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	cmd.Env = append(os.Environ(),
		fmt.Sprintf("%s=%s", EnvDotfiles, e.Root),
		fmt.Sprintf("%s=%s", EnvTopic, task.Topic),
		fmt.Sprintf("%s=%s", EnvPlatform, task.Platform),
	)

	// Interrupt first so installers can clean up, kill after the grace period.
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}
	cmd.WaitDelay = e.GracePeriod

	logging.LogCommand(task.Path, nil)
	err := cmd.Run()

	if e.Timeout > 0 && ctx.Err() == nil && taskCtx.Err() == context.DeadlineExceeded {
		e.logger.Warn().
			Str("topic", task.Topic).
			Dur("timeout", e.Timeout).
			Msg("Installer timed out")
		return ExitTimeout, errors.Newf(errors.ErrTaskExecution, "timed out after %s", e.Timeout)
	}

	// Cancelled before start, or after a clean exit raced the cancel.
	if ctx.Err() != nil && stderrors.Is(err, ctx.Err()) {
		return exitSignalBase + int(syscall.SIGINT), nil
	}

	code, launchErr := exitStatus(err)
	if launchErr != nil {
		e.logger.Error().
			Err(launchErr).
			Str("path", task.Path).
			Int("exitCode", code).
			Msg("Installer could not be started")
		return code, errors.Wrapf(launchErr, errors.ErrTaskExecution, "cannot execute %s", task.Path)
	}

	return code, nil
}
