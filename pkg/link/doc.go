// Package link installs the symlinks declared by each topic.
//
// A topic opts in with a manifest (symlink.yaml by default) mapping files
// inside the topic to their location in the home directory:
//
//	zshrc: ~/.zshrc
//	config/nvim: ~/.config/nvim
//
// Existing destinations are replaced, so linking twice is harmless. A bad
// entry is reported and the remaining entries are still linked.
package link
