// Package text provides plain text output. The same layout is reused by the
// terminal renderer through a Styler.
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgulich/dotfiles/pkg/types"
)

// Style names passed to a Styler
const (
	StyleHeader   = "Header"
	StyleTopic    = "Topic"
	StyleCounter  = "Counter"
	StyleFilePath = "FilePath"
	StyleSuccess  = "Success"
	StyleError    = "Error"
	StyleWarning  = "Warning"
	StyleMuted    = "Muted"
	StyleDryRun   = "DryRunBanner"
)

// Styler decorates s with the named style
type Styler func(style, s string) string

// Plain leaves text untouched
func Plain(_ string, s string) string {
	return s
}

// Renderer writes line-oriented output
type Renderer struct {
	output io.Writer
	style  Styler
}

// New creates a renderer without any styling
func New(output io.Writer) *Renderer {
	return NewStyled(output, Plain)
}

// NewStyled creates a renderer that decorates its output with style
func NewStyled(output io.Writer, style Styler) *Renderer {
	if style == nil {
		style = Plain
	}
	return &Renderer{output: output, style: style}
}

// TaskStarted prints "==> [i/n] topic: path"
func (r *Renderer) TaskStarted(index, total int, task types.InstallTask) {
	_, _ = fmt.Fprintf(r.output, "%s %s %s: %s\n",
		r.style(StyleHeader, "==>"),
		r.style(StyleCounter, fmt.Sprintf("[%d/%d]", index+1, total)),
		r.style(StyleTopic, task.Topic),
		r.style(StyleFilePath, task.Path),
	)
}

// TaskFinished prints the outcome of one installer
func (r *Renderer) TaskFinished(_, _ int, result types.RunResult) {
	if result.Succeeded {
		_, _ = fmt.Fprintf(r.output, "    %s %s\n", r.style(StyleSuccess, "ok"), result.Task.Topic)
		return
	}

	status := r.style(StyleError, fmt.Sprintf("FAILED (exit %d)", result.ExitCode))
	_, _ = fmt.Fprintf(r.output, "    %s %s\n", status, result.Task.Topic)
	if result.LaunchError != "" {
		_, _ = fmt.Fprintf(r.output, "      %s\n", r.style(StyleMuted, result.LaunchError))
	}
}

// RenderReport prints the final summary block
func (r *Renderer) RenderReport(report *types.RunReport) error {
	var b strings.Builder

	switch {
	case report.Empty():
		b.WriteString(nothingToDo(report.Root, report.Platform))
		b.WriteString("\n")
		return r.write(b.String())
	case report.DryRun:
		fmt.Fprintf(&b, "%s %d installers would run.\n", r.style(StyleDryRun, "Dry run:"), len(report.Results))
		return r.write(b.String())
	}

	b.WriteString("\n")

	if report.Cancelled {
		fmt.Fprintf(&b, "%s %d installers skipped.\n", r.style(StyleWarning, "Interrupted:"), len(report.Skipped))
		for _, task := range report.Skipped {
			fmt.Fprintf(&b, "  - %s\n", task.Topic)
		}
	}

	failed := report.FailedTopics()
	switch {
	case len(failed) > 0:
		fmt.Fprintf(&b, "%s\n", r.style(StyleError, "Failed topics:"))
		for _, topic := range failed {
			fmt.Fprintf(&b, "  - %s\n", topic)
		}
	case !report.Cancelled:
		fmt.Fprintf(&b, "%s\n", r.style(StyleSuccess, fmt.Sprintf("All %d installers succeeded.", len(report.Results))))
	}

	return r.write(b.String())
}

// RenderTasks prints one "topic  path" row per installer
func (r *Renderer) RenderTasks(root string, platform types.Platform, tasks []types.InstallTask) error {
	if len(tasks) == 0 {
		return r.write(nothingToDo(root, platform) + "\n")
	}

	width := 0
	for _, task := range tasks {
		if len(task.Topic) > width {
			width = len(task.Topic)
		}
	}

	var b strings.Builder
	for _, task := range tasks {
		padding := strings.Repeat(" ", width-len(task.Topic))
		fmt.Fprintf(&b, "%s%s  %s\n", r.style(StyleTopic, task.Topic), padding, r.style(StyleFilePath, task.Path))
	}
	return r.write(b.String())
}

// RenderLinks prints one line per symlink and a closing line
func (r *Renderer) RenderLinks(report *types.LinkReport) error {
	var b strings.Builder

	failures := 0
	for _, res := range report.Results {
		switch {
		case res.Error != "":
			failures++
			fmt.Fprintf(&b, "%s %s: %s\n", r.style(StyleError, "FAILED"), res.Entry.Topic, res.Error)
		case report.DryRun:
			fmt.Fprintf(&b, "Would create symlink from %s to %s.\n", res.Entry.Source, res.Entry.Destination)
		default:
			fmt.Fprintf(&b, "Created symlink from %s to %s.\n", res.Entry.Source, res.Entry.Destination)
		}
	}

	switch {
	case failures > 0:
		fmt.Fprintf(&b, "%s\n", r.style(StyleError, fmt.Sprintf("Failed to install %d of %d symlinks.", failures, len(report.Results))))
	case report.DryRun:
		fmt.Fprintf(&b, "%s %d symlinks would be installed.\n", r.style(StyleDryRun, "Dry run:"), len(report.Results))
	default:
		fmt.Fprintf(&b, "%s\n", r.style(StyleSuccess, "Successfully installed symlinks to all dotfiles."))
	}

	return r.write(b.String())
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.write(fmt.Sprintf("%s %v\n", r.style(StyleError, "Error:"), err))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.write(msg + "\n")
}

func (r *Renderer) write(s string) error {
	_, err := io.WriteString(r.output, s)
	return err
}

func nothingToDo(root string, platform types.Platform) string {
	return fmt.Sprintf("Nothing to do: no %s scripts found under %s", platform.ScriptPattern(), root)
}
