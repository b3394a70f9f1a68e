// Package main provides the satchel CLI, a local JSON-backed task and note
// manager.
package main

import (
	"errors"
	"fmt"
	"os"
)

// Exit codes honored by every subcommand.
const (
	exitSuccess   = 0
	exitUserError = 1 // no subcommand, or interactive cancel
	exitFailure   = 2 // resolvable failure: not found, duplicate ID
)

// errCancelled marks an interactive operation the user backed out of.
// Distinct from ErrNotFound; the two must never collapse into one code.
var errCancelled = errors.New("cancelled")

// errNoCommand marks an invocation without a subcommand.
var errNoCommand = errors.New("no command given")

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		switch {
		case errors.Is(err, errNoCommand):
			return exitUserError
		case errors.Is(err, errCancelled):
			fmt.Fprintln(os.Stderr, "Delete cancelled.")
			return exitUserError
		default:
			fmt.Fprintln(os.Stderr, "Error:", err)
			return exitFailure
		}
	}
	return exitSuccess
}
