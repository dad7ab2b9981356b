// KSUID CLI - generate, inspect and validate K-Sortable Unique IDentifiers.
//
// Usage:
//
//	ksuid generate [-n N] [-f FORMAT]   Generate KSUIDs
//	ksuid inspect <ksuid>...             Show the components of KSUIDs
//	ksuid validate <ksuid>...            Check that KSUIDs parse
//	ksuid version                        Show version information
package main

import (
	"fmt"
	"os"
)

// Build-time variables set via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
