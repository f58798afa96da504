// Package main provides the CLI entrypoint for teamfinder.
//
// teamfinder answers "which attack team beats this defense?" from a counter
// sheet:
//   - serve runs the Discord bot with the /team, /notfound and
//     /clear_not_found slash commands
//   - convert, find, units and inspect work on the sheet offline
//   - misses lists or clears the log of unmatched queries
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
