package link

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgulich/dotfiles/pkg/filesystem"
	"github.com/lgulich/dotfiles/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	*testutil.TestEnvironment
	root string
	home string
}

func newFixture(t *testing.T, files map[string]string) fixture {
	t.Helper()
	env := testutil.NewTestEnvironment(t, testutil.EnvIsolated)
	for rel, content := range files {
		env.WriteFile(rel, content)
	}
	return fixture{TestEnvironment: env, root: env.DotfilesRoot, home: env.HomeDir}
}

func TestLink_CreatesSymlinks(t *testing.T) {
	f := newFixture(t, map[string]string{
		"zsh/zshrc":            "export ZSH=1",
		"zsh/symlink.yaml":     "zshrc: ~/.zshrc\n",
		"vim/vimrc":            "set nu",
		"vim/symlink.yaml":     "vimrc: ~/.config/vim/vimrc\n",
		"tmux/tmux.conf":       "set -g mouse on",
		"README.md":            "not a topic",
		"scripts/install.sh":   "#!/bin/sh",
		"scripts/notes/readme": "no manifest here",
	})

	report, err := Link(filesystem.NewOS(), f.root, f.home, Options{})
	require.NoError(t, err)
	require.True(t, report.OverallSuccess)
	require.Len(t, report.Results, 2)

	// Topics in name order
	assert.Equal(t, "vim", report.Results[0].Entry.Topic)
	assert.Equal(t, "zsh", report.Results[1].Entry.Topic)

	target, err := os.Readlink(filepath.Join(f.home, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "zsh", "zshrc"), target)

	target, err = os.Readlink(filepath.Join(f.home, ".config", "vim", "vimrc"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(f.root, "vim", "vimrc"), target)
}

func TestLink_ReplacesExistingDestination(t *testing.T) {
	f := newFixture(t, map[string]string{
		"zsh/zshrc":        "new",
		"zsh/symlink.yaml": "zshrc: ~/.zshrc\n",
	})
	f.WriteHomeFile(".zshrc", "old")

	for i := 0; i < 2; i++ {
		report, err := Link(filesystem.NewOS(), f.root, f.home, Options{})
		require.NoError(t, err)
		assert.True(t, report.OverallSuccess)
	}

	content, err := os.ReadFile(filepath.Join(f.home, ".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))
}

func TestLink_FailuresAreIsolated(t *testing.T) {
	f := newFixture(t, map[string]string{
		"alpha/symlink.yaml": "missing: ~/.missing\n",
		"beta/symlink.yaml":  "- not\n- a map\n",
		"gamma/gammarc":      "ok",
		"gamma/symlink.yaml": "gammarc: ~/.gammarc\n",
	})
	require.NoError(t, os.MkdirAll(filepath.Join(f.home, ".dirdest"), 0755))
	f.WriteFile("gamma/dirsrc", "x")
	f.WriteFile("gamma/symlink.yaml", "gammarc: ~/.gammarc\ndirsrc: ~/.dirdest\n")

	report, err := Link(filesystem.NewOS(), f.root, f.home, Options{})
	require.NoError(t, err)
	assert.False(t, report.OverallSuccess)
	require.Len(t, report.Results, 4)

	assert.Equal(t, "alpha", report.Results[0].Entry.Topic)
	assert.Contains(t, report.Results[0].Error, "does not exist")

	assert.Equal(t, "beta", report.Results[1].Entry.Topic)
	assert.Contains(t, report.Results[1].Error, "MANIFEST_PARSE")

	// gamma entries sorted by source: dirsrc, gammarc
	assert.Contains(t, report.Results[2].Error, "is a directory")
	assert.True(t, report.Results[3].Created)

	_, err = os.Lstat(filepath.Join(f.home, ".gammarc"))
	assert.NoError(t, err)
}

func TestLink_DryRun(t *testing.T) {
	f := newFixture(t, map[string]string{
		"zsh/zshrc":        "x",
		"zsh/symlink.yaml": "zshrc: ~/.zshrc\n",
	})

	report, err := Link(filesystem.NewOS(), f.root, f.home, Options{DryRun: true})
	require.NoError(t, err)
	assert.True(t, report.DryRun)
	require.Len(t, report.Results, 1)
	assert.False(t, report.Results[0].Created)
	assert.Empty(t, report.Results[0].Error)

	_, err = os.Lstat(filepath.Join(f.home, ".zshrc"))
	assert.True(t, os.IsNotExist(err))
}

func TestLink_CustomManifestName(t *testing.T) {
	f := newFixture(t, map[string]string{
		"zsh/zshrc":      "x",
		"zsh/links.yaml": "zshrc: ~/.zshrc\n",
	})

	report, err := Link(filesystem.NewOS(), f.root, f.home, Options{Manifest: "links.yaml"})
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.True(t, report.Results[0].Created)
}

func TestLink_InMemory(t *testing.T) {
	env := testutil.NewTestEnvironment(t, testutil.EnvMemoryOnly)
	env.Mkdir("git")
	env.WriteFile("zsh/symlink.yaml", "zshrc: ~/.zshrc\n")

	report, err := Link(env.FS, env.DotfilesRoot, env.HomeDir, Options{})
	require.NoError(t, err)
	assert.False(t, report.OverallSuccess)
	require.Len(t, report.Results, 1)
	assert.Contains(t, report.Results[0].Error, "does not exist")

	env.WriteFile("zsh/zshrc", "x")
	report, err = Link(env.FS, env.DotfilesRoot, env.HomeDir, Options{})
	require.NoError(t, err)
	assert.True(t, report.OverallSuccess)

	target, err := env.FS.Readlink(env.HomePath(".zshrc"))
	require.NoError(t, err)
	assert.Equal(t, env.Path("zsh/zshrc"), target)
}

func TestLink_Errors(t *testing.T) {
	_, err := Link(filesystem.NewOS(), filepath.Join(t.TempDir(), "nope"), "/home/u", Options{})
	assert.Error(t, err)

	_, err = Link(filesystem.NewOS(), t.TempDir(), "", Options{})
	assert.Error(t, err)
}
