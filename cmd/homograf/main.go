// Package main is the entry point for the homograf CLI.
package main

import (
	"os"

	"github.com/f3rmion/homograf/cmd/homograf/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
