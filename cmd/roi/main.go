// Package main is the entry point for the ROI CLI.
package main

import (
	"fmt"
	"os"

	"airbnb-roi/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
