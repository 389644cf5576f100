//go:build !windows

package ui

// prepareConsole is a no-op on hosts without a maximizable console window.
func prepareConsole() {}
