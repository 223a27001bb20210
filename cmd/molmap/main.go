// Package main provides the entry point for the molmap CLI tool.
package main

import (
	"github.com/openchem/molmap/cmd/molmap/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	cmd.Execute(version, commit, date, builtBy)
}
