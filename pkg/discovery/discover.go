package discovery

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/logging"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/rs/zerolog"
)

// IgnoreFileName marks a directory whose subtree is skipped
const IgnoreFileName = ".installerignore"

// Options tunes discovery
type Options struct {
	// Ignore holds glob patterns matched against directory names
	Ignore []string
}

// Discover returns the installers for platform below root, sorted by path
func Discover(fsys types.FS, root string, platform types.Platform) ([]types.InstallTask, error) {
	return DiscoverWithOptions(fsys, root, platform, Options{})
}

// DiscoverWithOptions is Discover with ignore patterns applied
func DiscoverWithOptions(fsys types.FS, root string, platform types.Platform, opts Options) ([]types.InstallTask, error) {
	logger := logging.GetLogger("discovery")
	defer logging.LogOperationStart(logger, "discover")()

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDiscovery, "cannot resolve dotfiles root").
			WithDetail("path", root)
	}

	info, err := fsys.Stat(absRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrDiscovery, "dotfiles root does not exist").
				WithDetail("path", absRoot)
		}
		return nil, errors.Wrap(err, errors.ErrDiscovery, "cannot access dotfiles root").
			WithDetail("path", absRoot)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrDiscovery, "dotfiles root is not a directory").
			WithDetail("path", absRoot)
	}

	topLevel, err := fsys.ReadDir(absRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDiscovery, "cannot read dotfiles root").
			WithDetail("path", absRoot)
	}

	w := &walker{
		fsys:     fsys,
		pattern:  platform.ScriptPattern(),
		platform: platform,
		ignore:   opts.Ignore,
		logger:   logger,
	}

	for _, entry := range topLevel {
		// Depth-1 files are not part of any topic.
		if !entry.IsDir() {
			continue
		}
		topic := entry.Name()
		if w.shouldSkipDir(filepath.Join(absRoot, topic), topic) {
			continue
		}
		w.walk(filepath.Join(absRoot, topic), topic)
	}

	sort.Slice(w.tasks, func(i, j int) bool {
		return w.tasks[i].Path < w.tasks[j].Path
	})

	logger.Info().
		Str("root", absRoot).
		Str("platform", platform.String()).
		Int("count", len(w.tasks)).
		Msg("Discovered installers")

	return w.tasks, nil
}

type walker struct {
	fsys     types.FS
	pattern  string
	platform types.Platform
	ignore   []string
	logger   zerolog.Logger
	tasks    []types.InstallTask
}

func (w *walker) walk(dir, topic string) {
	entries, err := w.fsys.ReadDir(dir)
	if err != nil {
		// Only an unreadable root is fatal; a broken subtree is reported and skipped.
		w.logger.Warn().Err(err).Str("dir", dir).Msg("Cannot read directory, skipping")
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if !w.shouldSkipDir(path, entry.Name()) {
				w.walk(path, topic)
			}
			continue
		}

		if !w.matches(entry.Name()) || !w.isFile(path, entry) {
			continue
		}

		w.logger.Trace().Str("topic", topic).Str("path", path).Msg("Found installer")
		w.tasks = append(w.tasks, types.InstallTask{
			Topic:    topic,
			Path:     path,
			Platform: w.platform,
		})
	}
}

func (w *walker) matches(name string) bool {
	matched, err := filepath.Match(w.pattern, name)
	return err == nil && matched
}

// isFile accepts regular files and symlinks resolving to one
func (w *walker) isFile(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := w.fsys.Stat(path)
	if err != nil {
		w.logger.Warn().Err(err).Str("path", path).Msg("Dangling installer symlink, skipping")
		return false
	}
	return info.Mode().IsRegular()
}

func (w *walker) shouldSkipDir(path, name string) bool {
	if shouldIgnoreWithPatterns(name, w.ignore) {
		w.logger.Trace().Str("dir", path).Msg("Skipping ignored pattern")
		return true
	}
	if _, err := w.fsys.Stat(filepath.Join(path, IgnoreFileName)); err == nil {
		w.logger.Debug().Str("dir", path).Msg("Skipping directory with " + IgnoreFileName)
		return true
	}
	return false
}

// shouldIgnoreWithPatterns checks name against glob patterns; a trailing
// slash in a pattern is accepted and ignored.
func shouldIgnoreWithPatterns(name string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, _ := filepath.Match(strings.TrimSuffix(pattern, "/"), name); matched {
			return true
		}
	}
	return false
}
