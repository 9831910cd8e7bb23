package types

// LinkEntry is one source -> destination pair from a topic's symlink manifest
type LinkEntry struct {
	Topic       string `json:"topic" yaml:"topic"`
	Source      string `json:"source" yaml:"source"`
	Destination string `json:"destination" yaml:"destination"`
}

// LinkResult is the outcome of creating one symlink
type LinkResult struct {
	Entry   LinkEntry `json:"entry" yaml:"entry"`
	Created bool      `json:"created" yaml:"created"`
	Error   string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// LinkReport aggregates the symlinks created for a dotfiles root
type LinkReport struct {
	Root           string       `json:"root" yaml:"root"`
	DryRun         bool         `json:"dry_run" yaml:"dry_run"`
	Results        []LinkResult `json:"results" yaml:"results"`
	OverallSuccess bool         `json:"overall_success" yaml:"overall_success"`
}

// NewLinkReport builds a report; OverallSuccess holds iff no result carries an error.
func NewLinkReport(root string, dryRun bool, results []LinkResult) *LinkReport {
	if results == nil {
		results = []LinkResult{}
	}
	overall := true
	for _, r := range results {
		if r.Error != "" {
			overall = false
			break
		}
	}
	return &LinkReport{
		Root:           root,
		DryRun:         dryRun,
		Results:        results,
		OverallSuccess: overall,
	}
}
