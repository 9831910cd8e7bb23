package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lgulich/dotfiles/pkg/filesystem"
	"github.com/lgulich/dotfiles/pkg/paths"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/spf13/afero"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment is a dotfiles root plus a home directory
type TestEnvironment struct {
	DotfilesRoot string
	HomeDir      string

	// FS is what the code under test should use; Fs is the backing store
	FS types.FS
	Fs afero.Fs

	Type EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.Fs = afero.NewMemMapFs()
		env.FS = filesystem.NewAferoFS(env.Fs)
		env.DotfilesRoot = "/dotfiles"
		env.HomeDir = "/home/testuser"
	case EnvIsolated:
		base := t.TempDir()
		env.Fs = afero.NewOsFs()
		env.FS = filesystem.NewOS()
		env.DotfilesRoot = filepath.Join(base, "dotfiles")
		env.HomeDir = filepath.Join(base, "home")
		// Keep log files out of the real state directory.
		t.Setenv(paths.EnvStateHome, filepath.Join(base, "state"))
	default:
		t.Fatalf("unknown environment type %d", envType)
	}

	env.mkdir(env.DotfilesRoot)
	env.mkdir(env.HomeDir)
	return env
}

// Path returns the absolute path of rel inside the dotfiles root
func (e *TestEnvironment) Path(rel string) string {
	return filepath.Join(e.DotfilesRoot, filepath.FromSlash(rel))
}

// HomePath returns the absolute path of rel inside the home directory
func (e *TestEnvironment) HomePath(rel string) string {
	return filepath.Join(e.HomeDir, filepath.FromSlash(rel))
}

// Mkdir creates a directory inside the dotfiles root
func (e *TestEnvironment) Mkdir(rel string) string {
	e.t.Helper()
	path := e.Path(rel)
	e.mkdir(path)
	return path
}

// WriteFile writes a regular file inside the dotfiles root
func (e *TestEnvironment) WriteFile(rel, content string) string {
	e.t.Helper()
	return e.write(e.Path(rel), content, 0644)
}

// WriteScript writes an executable shell script inside the dotfiles root
// and returns its path
func (e *TestEnvironment) WriteScript(rel, body string) string {
	e.t.Helper()
	return e.write(e.Path(rel), "#!/bin/sh\n"+body+"\n", 0755)
}

// WriteHomeFile writes a regular file inside the home directory
func (e *TestEnvironment) WriteHomeFile(rel, content string) string {
	e.t.Helper()
	return e.write(e.HomePath(rel), content, 0644)
}

// Task returns the InstallTask discovery would build for a script
func (e *TestEnvironment) Task(rel string, platform types.Platform) types.InstallTask {
	topic := filepath.ToSlash(rel)
	for i := 0; i < len(topic); i++ {
		if topic[i] == '/' {
			topic = topic[:i]
			break
		}
	}
	return types.InstallTask{Topic: topic, Path: e.Path(rel), Platform: platform}
}

func (e *TestEnvironment) mkdir(path string) {
	e.t.Helper()
	if err := e.Fs.MkdirAll(path, 0755); err != nil {
		e.t.Fatalf("failed to create %s: %v", path, err)
	}
}

func (e *TestEnvironment) write(path, content string, mode os.FileMode) string {
	e.t.Helper()
	e.mkdir(filepath.Dir(path))
	if err := afero.WriteFile(e.Fs, path, []byte(content), mode); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
