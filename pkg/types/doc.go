// Package types defines the core types and interfaces used throughout installer-run.
// This includes the FS interface used for discovery and linking, as well as
// data structures like InstallTask, RunResult, RunReport and LinkReport.
package types
