package discovery

import (
	"sort"
	"strings"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/logging"
	"github.com/lgulich/dotfiles/pkg/types"
)

// SelectTopics filters tasks by topic, keeping discovery order.
// An empty only list selects every topic; skip always wins.
func SelectTopics(tasks []types.InstallTask, only, skip []string) ([]types.InstallTask, error) {
	logger := logging.GetLogger("discovery.selection")

	available := TopicNames(tasks)
	known := make(map[string]bool, len(available))
	for _, name := range available {
		known[name] = true
	}

	var notFound []string
	wanted := make(map[string]bool, len(only))
	for _, name := range only {
		if !known[name] {
			notFound = append(notFound, name)
		}
		wanted[name] = true
	}
	if len(notFound) > 0 {
		return nil, errors.Newf(errors.ErrInvalidInput, "no installer for topic(s) %s on this platform", strings.Join(notFound, ", ")).
			WithDetail("notFound", notFound).
			WithDetail("available", available)
	}

	skipped := make(map[string]bool, len(skip))
	for _, name := range skip {
		skipped[name] = true
	}

	selected := make([]types.InstallTask, 0, len(tasks))
	for _, task := range tasks {
		if len(wanted) > 0 && !wanted[task.Topic] {
			continue
		}
		if skipped[task.Topic] {
			logger.Debug().Str("topic", task.Topic).Msg("Skipping topic")
			continue
		}
		selected = append(selected, task)
	}

	logger.Info().
		Int("selected", len(selected)).
		Int("total", len(tasks)).
		Msg("Selected installers")

	return selected, nil
}

// TopicNames returns the distinct topics of tasks, sorted
func TopicNames(tasks []types.InstallTask) []string {
	seen := make(map[string]bool)
	var names []string
	for _, task := range tasks {
		if !seen[task.Topic] {
			seen[task.Topic] = true
			names = append(names, task.Topic)
		}
	}
	sort.Strings(names)
	return names
}
