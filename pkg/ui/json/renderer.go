// Package json provides machine-readable JSON output
package json

import (
	"encoding/json"
	"io"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/types"
)

// Renderer writes one JSON document per call. Progress notifications are
// dropped so that a run produces a single report document.
type Renderer struct {
	output  io.Writer
	encoder *json.Encoder
}

// New creates a new JSON renderer
func New(output io.Writer) *Renderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{
		output:  output,
		encoder: encoder,
	}
}

func (r *Renderer) TaskStarted(int, int, types.InstallTask) {}
func (r *Renderer) TaskFinished(int, int, types.RunResult)  {}

// RenderReport encodes the run report
func (r *Renderer) RenderReport(report *types.RunReport) error {
	return r.encoder.Encode(report)
}

type taskList struct {
	Root     string              `json:"root"`
	Platform types.Platform      `json:"platform"`
	Tasks    []types.InstallTask `json:"tasks"`
}

// RenderTasks encodes the discovered installers
func (r *Renderer) RenderTasks(root string, platform types.Platform, tasks []types.InstallTask) error {
	if tasks == nil {
		tasks = []types.InstallTask{}
	}
	return r.encoder.Encode(taskList{Root: root, Platform: platform, Tasks: tasks})
}

// RenderLinks encodes the link report
func (r *Renderer) RenderLinks(report *types.LinkReport) error {
	return r.encoder.Encode(report)
}

// errorDocument is the JSON shape of a failed command
type errorDocument struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError renders an error with its code and details as JSON
func (r *Renderer) RenderError(err error) error {
	return r.encoder.Encode(errorDocument{
		Error:   err.Error(),
		Code:    errors.GetErrorCode(err),
		Details: errors.GetErrorDetails(err),
	})
}

// RenderMessage renders a simple message as JSON
func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{
		"message": msg,
	})
}
