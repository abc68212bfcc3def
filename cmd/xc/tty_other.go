//go:build !linux
// +build !linux

package main

import "os"

// isTerminal returns whether f is a character device, which is usually a
// terminal.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
