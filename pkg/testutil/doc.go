// Package testutil builds dotfiles trees for tests, either in memory or in
// an isolated temporary directory on the real filesystem.
//
// Use EnvMemoryOnly for logic that only goes through types.FS, and
// EnvIsolated whenever installers are executed or symlinks are created.
package testutil
