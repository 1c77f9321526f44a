// Package model defines the domain types and value objects for the
// envcheck CLI.
//
// This package contains pure data structures with no external dependencies.
// All entities (CheckResult, Report, CloudStats) are transient — they are
// created during a single check run, consumed for console or report output,
// and discarded on process exit. There are no persistent state files.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
