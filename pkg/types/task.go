package types

import "time"

// InstallTask is one discovered installer script
type InstallTask struct {
	// Topic is the first directory below the dotfiles root
	Topic    string   `json:"topic" yaml:"topic"`
	Path     string   `json:"path" yaml:"path"`
	Platform Platform `json:"platform" yaml:"platform"`
}

// RunResult is the outcome of running one InstallTask
type RunResult struct {
	Task      InstallTask   `json:"task" yaml:"task"`
	ExitCode  int           `json:"exit_code" yaml:"exit_code"`
	Succeeded bool          `json:"succeeded" yaml:"succeeded"`
	Duration  time.Duration `json:"duration" yaml:"duration"`

	// LaunchError is set when the process could not be started at all
	LaunchError string `json:"launch_error,omitempty" yaml:"launch_error,omitempty"`
}

// NewRunResult creates a RunResult. Succeeded is derived from exitCode.
func NewRunResult(task InstallTask, exitCode int, duration time.Duration) RunResult {
	return RunResult{
		Task:      task,
		ExitCode:  exitCode,
		Succeeded: exitCode == 0,
		Duration:  duration,
	}
}

// WithLaunchError returns a copy of the result carrying a launch failure
func (r RunResult) WithLaunchError(err error) RunResult {
	if err != nil {
		r.LaunchError = err.Error()
	}
	return r
}

// RunReport aggregates the results of one invocation, in execution order
type RunReport struct {
	Root     string   `json:"root" yaml:"root"`
	Platform Platform `json:"platform" yaml:"platform"`
	DryRun   bool     `json:"dry_run" yaml:"dry_run"`

	Results        []RunResult `json:"results" yaml:"results"`
	OverallSuccess bool        `json:"overall_success" yaml:"overall_success"`

	// Cancelled is set when the run was interrupted; Skipped lists the
	// tasks that never started because of it.
	Cancelled bool          `json:"cancelled" yaml:"cancelled"`
	Skipped   []InstallTask `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// NewRunReport builds a report; OverallSuccess holds iff every result succeeded.
func NewRunReport(root string, platform Platform, results []RunResult) *RunReport {
	if results == nil {
		results = []RunResult{}
	}
	overall := true
	for _, r := range results {
		if !r.Succeeded {
			overall = false
			break
		}
	}
	return &RunReport{
		Root:           root,
		Platform:       platform,
		Results:        results,
		OverallSuccess: overall,
	}
}

// Failed returns the failing results in execution order
func (r *RunReport) Failed() []RunResult {
	var failed []RunResult
	for _, res := range r.Results {
		if !res.Succeeded {
			failed = append(failed, res)
		}
	}
	return failed
}

// FailedTopics returns the topics of failing results, in execution order
// and without duplicates
func (r *RunReport) FailedTopics() []string {
	seen := make(map[string]bool)
	var topics []string
	for _, res := range r.Failed() {
		if !seen[res.Task.Topic] {
			seen[res.Task.Topic] = true
			topics = append(topics, res.Task.Topic)
		}
	}
	return topics
}

// Empty reports whether nothing was scheduled at all
func (r *RunReport) Empty() bool {
	return len(r.Results) == 0 && len(r.Skipped) == 0
}
