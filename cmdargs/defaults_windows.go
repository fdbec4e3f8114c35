//go:build windows
// +build windows

package cmdargs

const (
	defaultVerbose  = true
	defaultColorize = false
)
