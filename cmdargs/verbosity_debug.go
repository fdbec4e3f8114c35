//go:build debug
// +build debug

package cmdargs

// Debug builds log everything by default.
const defaultVerbosityLevel = 5
