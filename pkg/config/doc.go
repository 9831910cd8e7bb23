// Package config handles configuration management for installer-run.
// It layers the embedded defaults, an optional root config file in the
// dotfiles directory, INSTALLER_* environment variables and command-line
// flags, in that order of increasing precedence.
package config
