// Package main provides the entry point for the savemsg CLI tool.
// savemsg renders human-readable messages for failed file saves.
package main

import (
	"github.com/tmeurs/savemsg/internal/cli"
)

// Version information set at build time via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	// Set version information in the CLI package
	cli.SetVersion(version, commit, date)

	// Execute the Cobra CLI
	cli.Execute()
}
