package discovery

import (
	"testing"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tasksFor(topics ...string) []types.InstallTask {
	tasks := make([]types.InstallTask, len(topics))
	for i, topic := range topics {
		tasks[i] = types.InstallTask{Topic: topic, Path: "/d/" + topic + "/install.ubuntu.sh", Platform: types.PlatformUbuntu}
	}
	return tasks
}

func topicsOf(tasks []types.InstallTask) []string {
	out := []string{}
	for _, task := range tasks {
		out = append(out, task.Topic)
	}
	return out
}

func TestSelectTopics(t *testing.T) {
	all := tasksFor("git", "tmux", "vim", "zsh")

	tests := []struct {
		name string
		only []string
		skip []string
		want []string
	}{
		{"no filters keeps all", nil, nil, []string{"git", "tmux", "vim", "zsh"}},
		{"only keeps discovery order", []string{"zsh", "git"}, nil, []string{"git", "zsh"}},
		{"skip removes topics", nil, []string{"tmux"}, []string{"git", "vim", "zsh"}},
		{"skip wins over only", []string{"vim", "zsh"}, []string{"zsh"}, []string{"vim"}},
		{"unknown skip is harmless", nil, []string{"emacs"}, []string{"git", "tmux", "vim", "zsh"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectTopics(all, tt.only, tt.skip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, topicsOf(got))
		})
	}
}

func TestSelectTopics_UnknownOnly(t *testing.T) {
	_, err := SelectTopics(tasksFor("git", "zsh"), []string{"zsh", "emacs"}, nil)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Equal(t, []string{"emacs"}, errors.GetErrorDetails(err)["notFound"])
}

func TestTopicNames(t *testing.T) {
	assert.Equal(t, []string{"ros", "zsh"}, TopicNames(tasksFor("zsh", "ros", "ros")))
	assert.Empty(t, TopicNames(nil))
}
