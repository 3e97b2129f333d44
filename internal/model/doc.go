// Package model defines the domain types and value objects for the
// bitwig-uuid-collector CLI.
//
// This package contains pure data structures with no external dependencies.
// The device catalog is a fixed, ordered list; the result mapping is built
// once per run and handed to the store package for serialization. Nothing
// here touches the console, the clipboard or the filesystem.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
