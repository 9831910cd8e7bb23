package link

import (
	"path/filepath"
	"sort"

	"github.com/lgulich/dotfiles/pkg/errors"
	"github.com/lgulich/dotfiles/pkg/paths"
	"github.com/lgulich/dotfiles/pkg/types"
	"gopkg.in/yaml.v3"
)

// DefaultManifest is the manifest file name looked up in every topic
const DefaultManifest = "symlink.yaml"

// ParseManifest reads a manifest and returns its entries sorted by source.
// Sources are resolved against topicDir; destinations have ~ expanded to
// home, and relative destinations are taken relative to home.
func ParseManifest(data []byte, topic, topicDir, home string) ([]types.LinkEntry, error) {
	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid symlink manifest").
			WithDetail("topic", topic)
	}

	entries := make([]types.LinkEntry, 0, len(raw))
	for source, destination := range raw {
		if source == "" || destination == "" {
			return nil, errors.Newf(errors.ErrManifestParse, "empty source or destination in manifest of %s", topic).
				WithDetail("topic", topic).
				WithDetail("source", source)
		}

		dest := paths.ExpandHomeWith(destination, home)
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(home, dest)
		}

		entries = append(entries, types.LinkEntry{
			Topic:       topic,
			Source:      filepath.Join(topicDir, source),
			Destination: filepath.Clean(dest),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Source < entries[j].Source
	})
	return entries, nil
}
