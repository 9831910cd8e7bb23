// Package discovery finds the installer scripts of a dotfiles root.
//
// Every topic directory below the root may own scripts named
// install.<platform>.<ext>. Discovery walks the tree through a types.FS,
// so tests can run against an in-memory filesystem, and returns the
// matching scripts sorted by path. Files directly in the root are never
// installers; they belong to no topic.
package discovery
