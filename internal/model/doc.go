// Package model defines the domain types and value objects for the
// rolldice CLI.
//
// This package contains pure data structures with no external dependencies.
// A roll is represented as a RollSet of FaceValues, produced once per
// invocation and never persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
