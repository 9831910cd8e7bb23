package config

import (
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Root config file names, checked in order
var RootConfigFiles = []string{".installer.toml", ".installer.yaml", ".installer.yml"}

// EnvPrefix is the prefix of environment overrides; "__" separates nested keys
const EnvPrefix = "INSTALLER_"

// Config is the effective runner configuration
type Config struct {
	Platform string        `koanf:"platform"`
	Format   string        `koanf:"format"`
	Timeout  time.Duration `koanf:"timeout"`
	Ignore   []string      `koanf:"ignore"`
	Skip     []string      `koanf:"skip"`
	Symlink  Symlink       `koanf:"symlink"`

	// Source is the root config file that was loaded, if any
	Source string `koanf:"-"`
}

// Symlink configures the link command
type Symlink struct {
	Manifest string `koanf:"manifest"`
}

// tomlView is the shape written by ToTOML
type tomlView struct {
	Platform string   `toml:"platform"`
	Format   string   `toml:"format"`
	Timeout  string   `toml:"timeout"`
	Ignore   []string `toml:"ignore"`
	Skip     []string `toml:"skip"`
	Symlink  struct {
		Manifest string `toml:"manifest"`
	} `toml:"symlink"`
}

// ToTOML renders the configuration in the root config file format
func (c *Config) ToTOML() ([]byte, error) {
	view := tomlView{
		Platform: c.Platform,
		Format:   c.Format,
		Timeout:  c.Timeout.String(),
		Ignore:   nonNil(c.Ignore),
		Skip:     nonNil(c.Skip),
	}
	view.Symlink.Manifest = c.Symlink.Manifest
	return toml.Marshal(view)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
