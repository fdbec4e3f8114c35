//go:build !windows
// +build !windows

package cmdargs

const (
	defaultVerbose  = false
	defaultColorize = true
)
