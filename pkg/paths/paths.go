// Package paths provides centralized path handling for installer-run.
// It resolves the dotfiles root, the home directory used as symlink target,
// and the XDG state directory that holds the log file.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/lgulich/dotfiles/pkg/errors"
)

// Environment variable names
const (
	// EnvDotfiles is the variable the install scripts themselves export
	EnvDotfiles = "DOTFILES"

	// EnvDotfilesRoot is accepted as an alias for EnvDotfiles
	EnvDotfilesRoot = "DOTFILES_ROOT"

	// EnvStateHome overrides the XDG state directory
	EnvStateHome = "XDG_STATE_HOME"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

const (
	// AppDirName is the directory name used below XDG base directories
	AppDirName = "installer-run"

	// LogFileName is the name of the log file
	LogFileName = "installer-run.log"
)

// Paths provides centralized path management
type Paths interface {
	DotfilesRoot() string
	UsedFallback() bool
	HomeDir() string
	StateDir() string
	LogFilePath() string
}

type paths struct {
	dotfilesRoot string
	homeDir      string
	stateDir     string

	// usedFallback indicates if we fell back to cwd (for warning display)
	usedFallback bool
}

// New creates a new Paths instance with the given dotfiles root.
// If dotfilesRoot is empty, it is resolved from the environment, the
// enclosing git repository or the current directory, in that order.
func New(dotfilesRoot string) (Paths, error) {
	p := &paths{}

	if dotfilesRoot == "" {
		root, usedFallback, err := findDotfilesRoot()
		if err != nil {
			return nil, err
		}
		p.dotfilesRoot = root
		p.usedFallback = usedFallback
	} else {
		p.dotfilesRoot = ExpandHome(dotfilesRoot)
	}

	absRoot, err := filepath.Abs(p.dotfilesRoot)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to get absolute path for dotfiles root")
	}
	p.dotfilesRoot = absRoot

	p.homeDir = GetHomeDirectoryWithDefault("")
	p.stateDir = filepath.Join(StateHome(), AppDirName)

	return p, nil
}

// findDotfilesRoot determines the dotfiles root using the following priority:
// 1. DOTFILES, then DOTFILES_ROOT environment variables
// 2. Git repository root (found via 'git rev-parse --show-toplevel')
// 3. Current working directory (fallback)
func findDotfilesRoot() (string, bool, error) {
	for _, name := range []string{EnvDotfiles, EnvDotfilesRoot} {
		if root := os.Getenv(name); root != "" {
			return ExpandHome(root), false, nil
		}
	}

	if gitRoot, err := findGitRoot(); err == nil && gitRoot != "" {
		return gitRoot, false, nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrFileAccess, "failed to get current directory")
	}

	return cwd, true, nil
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// StateHome returns the XDG state home, re-reading the environment so that
// overrides made after process start are honored.
func StateHome() string {
	if dir := os.Getenv(EnvStateHome); dir != "" {
		return dir
	}
	return xdg.StateHome
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	return ExpandHomeWith(path, GetHomeDirectoryWithDefault(""))
}

// ExpandHomeWith expands a leading ~ to the given home directory
func ExpandHomeWith(path, homeDir string) string {
	if path == "" || path[0] != '~' || homeDir == "" {
		return path
	}

	if len(path) == 1 {
		return homeDir
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~user is not expanded
	return path
}

// GetHomeDirectory returns the home directory, preferring $HOME
func GetHomeDirectory() (string, error) {
	if home := os.Getenv(EnvHome); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrNotFound, "cannot determine home directory")
	}
	return home, nil
}

// GetHomeDirectoryWithDefault returns the home directory or defaultDir
func GetHomeDirectoryWithDefault(defaultDir string) string {
	home, err := GetHomeDirectory()
	if err != nil {
		return defaultDir
	}
	return home
}

func (p *paths) DotfilesRoot() string {
	return p.dotfilesRoot
}

// UsedFallback returns true if the current working directory was used as fallback
func (p *paths) UsedFallback() bool {
	return p.usedFallback
}

func (p *paths) HomeDir() string {
	return p.homeDir
}

func (p *paths) StateDir() string {
	return p.stateDir
}

func (p *paths) LogFilePath() string {
	return filepath.Join(p.stateDir, LogFileName)
}
