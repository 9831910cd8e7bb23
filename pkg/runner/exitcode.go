package runner

import (
	stderrors "errors"
	"io/fs"
	"os/exec"
	"syscall"
)

// Exit codes for installers that did not exit on their own, following
// the shell conventions.
const (
	ExitTimeout       = 124
	ExitCannotExecute = 126
	ExitNotFound      = 127
	exitSignalBase    = 128
)

// exitStatus converts the error of exec.Cmd.Run into an exit code.
// The returned error is non-nil only when the process could not be launched.
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if stderrors.As(err, &exitErr) {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok && status.Signaled() {
			return exitSignalBase + int(status.Signal()), nil
		}
		return exitErr.ExitCode(), nil
	}

	switch {
	case stderrors.Is(err, fs.ErrPermission), stderrors.Is(err, syscall.ENOEXEC):
		return ExitCannotExecute, err
	default:
		return ExitNotFound, err
	}
}
