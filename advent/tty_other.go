//go:build !linux

package main

import "os"

// isTerminal is only implemented on Linux; elsewhere the REPL must be
// requested explicitly.
func isTerminal(f *os.File) bool {
	return false
}
