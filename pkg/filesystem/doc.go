// Package filesystem provides filesystem implementations for installer-run.
//
// This package contains implementations of the types.FS interface,
// backed by the OS filesystem or by any afero.Fs (used by tests).
package filesystem
