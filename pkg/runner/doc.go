// Package runner executes discovered installers one after another.
//
// Installers may touch the same files and package manager state, so they
// are never run concurrently. A failing installer is recorded in the
// report and the run moves on to the next one; only cancellation stops
// the batch early.
package runner
