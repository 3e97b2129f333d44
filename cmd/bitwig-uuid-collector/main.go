// Package main is the entry point for the bitwig-uuid-collector CLI.
//
// This binary walks an operator through a fixed list of Bitwig devices and
// saves the device IDs copied from Bitwig Studio's clipboard. It delegates
// all functionality to the internal/cli package, which defines cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags.
// During development, they default to "dev", "none", and "unknown".
package main

import (
	"github.com/shinji-kodama/bitwig-uuid-collector/internal/cli"
)

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
