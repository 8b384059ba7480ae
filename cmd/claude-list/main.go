// Package main is the entry point for the claude-list CLI.
package main

import (
	"fmt"
	"os"

	"github.com/claude-list/claude-list/internal/cli"
)

var version = "0.1.0"

func main() {
	if err := cli.NewRootCommand(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
