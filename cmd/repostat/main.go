// Package main provides the entry point for the repostat CLI tool.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/Sumatoshi-tech/repostat/cmd/repostat/commands"
)

func main() {
	rootCmd := commands.NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
