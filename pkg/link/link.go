package link

import (
	"os"
	"path/filepath"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/logging"
	"github.com/lgulich/dotfiles/pkg/types"
	"github.com/rs/zerolog"
)

// Options configures Link
type Options struct {
	// Manifest is the per-topic manifest file name, DefaultManifest if empty
	Manifest string
	DryRun   bool
}

// Link creates the symlinks of every topic below root that carries a
// manifest. Topics are processed in name order. Only an unreadable root is
// returned as an error; per-entry problems end up in the report.
func Link(fsys types.FS, root, home string, opts Options) (*types.LinkReport, error) {
	logger := logging.GetLogger("link")
	defer logging.LogOperationStart(logger, "link")()

	manifest := opts.Manifest
	if manifest == "" {
		manifest = DefaultManifest
	}

	if home == "" {
		return nil, errors.New(errors.ErrInvalidInput, "home directory is not set")
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot resolve dotfiles root").
			WithDetail("path", root)
	}

	topics, err := fsys.ReadDir(absRoot)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot read dotfiles root").
			WithDetail("path", absRoot)
	}

	var results []types.LinkResult
	for _, topic := range topics {
		if !topic.IsDir() {
			continue
		}

		topicDir := filepath.Join(absRoot, topic.Name())
		manifestPath := filepath.Join(topicDir, manifest)

		data, err := fsys.ReadFile(manifestPath)
		if err != nil {
			if !os.IsNotExist(err) {
				logger.Warn().Err(err).Str("path", manifestPath).Msg("Cannot read symlink manifest")
				results = append(results, failure(types.LinkEntry{Topic: topic.Name(), Source: manifestPath}, err))
			}
			continue
		}

		entries, err := ParseManifest(data, topic.Name(), topicDir, home)
		if err != nil {
			logger.Warn().Err(err).Str("path", manifestPath).Msg("Invalid symlink manifest")
			results = append(results, failure(types.LinkEntry{Topic: topic.Name(), Source: manifestPath}, err))
			continue
		}

		for _, entry := range entries {
			results = append(results, linkOne(fsys, entry, opts.DryRun, logger))
		}
	}

	report := types.NewLinkReport(absRoot, opts.DryRun, results)
	logger.Info().
		Int("links", len(results)).
		Bool("success", report.OverallSuccess).
		Msg("Linking completed")

	return report, nil
}

func linkOne(fsys types.FS, entry types.LinkEntry, dryRun bool, logger zerolog.Logger) types.LinkResult {
	logger = logger.With().
		Str("topic", entry.Topic).
		Str("source", entry.Source).
		Str("destination", entry.Destination).
		Logger()

	if _, err := fsys.Stat(entry.Source); err != nil {
		return failure(entry, errors.Wrapf(err, errors.ErrNotFound, "source %s does not exist", entry.Source))
	}

	if dryRun {
		logger.Info().Msg("Dry run mode - symlink would be created")
		return types.LinkResult{Entry: entry}
	}

	if err := fsys.MkdirAll(filepath.Dir(entry.Destination), 0755); err != nil {
		return failure(entry, errors.Wrapf(err, errors.ErrFileWrite, "cannot create parent of %s", entry.Destination))
	}

	if info, err := fsys.Lstat(entry.Destination); err == nil {
		if info.IsDir() {
			return failure(entry, errors.Newf(errors.ErrSymlinkCreate, "destination %s is a directory", entry.Destination))
		}
		if err := fsys.Remove(entry.Destination); err != nil {
			return failure(entry, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot replace %s", entry.Destination))
		}
		logger.Debug().Msg("Replaced existing destination")
	}

	if err := fsys.Symlink(entry.Source, entry.Destination); err != nil {
		return failure(entry, errors.Wrapf(err, errors.ErrSymlinkCreate, "cannot link %s", entry.Destination))
	}

	logger.Info().Msg("Created symlink")
	return types.LinkResult{Entry: entry, Created: true}
}

func failure(entry types.LinkEntry, err error) types.LinkResult {
	return types.LinkResult{Entry: entry, Error: err.Error()}
}
