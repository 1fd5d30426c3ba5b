// Package main is the entry point for the slugr CLI tool.
package main

import (
	"os"

	"github.com/aidanlsb/slugr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
