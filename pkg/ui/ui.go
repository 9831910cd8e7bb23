// Package ui renders run, list and link results in the supported output
// formats: styled terminal output, plain text and JSON.
package ui

import (
	"io"
	"os"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/lgulich/dotfiles/pkg/ui/json"
	"github.com/lgulich/dotfiles/pkg/ui/terminal"
	"github.com/lgulich/dotfiles/pkg/ui/text"
)

// Renderer is the common interface for all output renderers.
// TaskStarted and TaskFinished make every Renderer usable as a run observer.
type Renderer interface {
	TaskStarted(index, total int, task types.InstallTask)
	TaskFinished(index, total int, result types.RunResult)

	// RenderReport renders the summary of a run
	RenderReport(report *types.RunReport) error

	// RenderTasks renders discovered installers without running them
	RenderTasks(root string, platform types.Platform, tasks []types.InstallTask) error

	// RenderLinks renders the outcome of the link command
	RenderLinks(report *types.LinkReport) error

	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer creates a renderer for format writing to output.
// FormatAuto inspects output when it is a file and falls back to text otherwise.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		if file, ok := output.(*os.File); ok {
			return NewRenderer(DetectFormat(file), output)
		}
		return NewRenderer(FormatText, output)
	case FormatTerminal:
		return terminal.New(output), nil
	case FormatText:
		return text.New(output), nil
	case FormatJSON:
		return json.New(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
