//go:build !debug
// +build !debug

package cmdargs

// Verbosity level 3 enables warn, error, and fatal.
const defaultVerbosityLevel = 3
