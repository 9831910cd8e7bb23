package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOS(t *testing.T) {
	fs := NewOS()
	tmpDir := t.TempDir()

	subDir := filepath.Join(tmpDir, "zsh")
	require.NoError(t, fs.MkdirAll(subDir, 0755))

	script := filepath.Join(subDir, "install.ubuntu.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\n"), 0755))

	info, err := fs.Stat(script)
	require.NoError(t, err)
	assert.Equal(t, "install.ubuntu.sh", info.Name())

	content, err := fs.ReadFile(script)
	require.NoError(t, err)
	assert.Equal(t, "#!/bin/sh\n", string(content))

	entries, err := fs.ReadDir(tmpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].IsDir())

	link := filepath.Join(tmpDir, "link")
	require.NoError(t, fs.Symlink(script, link))

	target, err := fs.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, script, target)

	linfo, err := fs.Lstat(link)
	require.NoError(t, err)
	assert.NotZero(t, linfo.Mode()&os.ModeSymlink)

	require.NoError(t, fs.Remove(link))
	_, err = fs.Lstat(link)
	assert.True(t, os.IsNotExist(err))
}

func TestNewAferoFS_MemMapFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	fs := NewAferoFS(mem)

	require.NoError(t, fs.MkdirAll("/dotfiles/vim", 0755))
	require.NoError(t, afero.WriteFile(mem, "/dotfiles/vim/install.darwin.sh", []byte("echo vim"), 0755))
	require.NoError(t, afero.WriteFile(mem, "/dotfiles/vim/vimrc", []byte("set nu"), 0644))

	entries, err := fs.ReadDir("/dotfiles/vim")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "install.darwin.sh", entries[0].Name())
	assert.Equal(t, "vimrc", entries[1].Name())

	_, err = fs.ReadFile("/dotfiles/vim")
	assert.Error(t, err, "reading a directory should fail")

	require.NoError(t, fs.Symlink("/dotfiles/vim/vimrc", "/home/.vimrc"))
	target, err := fs.Readlink("/home/.vimrc")
	require.NoError(t, err)
	assert.Equal(t, "/dotfiles/vim/vimrc", target)
}

func TestNewAferoFS_OsFsSupportsRealSymlinks(t *testing.T) {
	tmpDir := t.TempDir()
	fs := NewAferoFS(afero.NewOsFs())

	src := filepath.Join(tmpDir, "src")
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	dst := filepath.Join(tmpDir, "dst")
	require.NoError(t, fs.Symlink(src, dst))

	info, err := fs.Lstat(dst)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&os.ModeSymlink)
}
