// Package main is the entry point for the rolldice CLI.
//
// This binary rolls one to six dice and prints an ASCII-art diagram of the
// faces. It delegates all functionality to the internal/cli package, which
// defines the cobra command.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/rolldice/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
