// Package dlog provides leveled, domain-scoped diagnostic logging with
// centralized runtime configuration.
//
// Output is organized along two axes: a domain names the subsystem emitting
// a message ("hw", "scsi", "config"), and a level names its severity (dump,
// info, warn, error, fatal). Every (domain, level) pair owns a channel that
// can be enabled, disabled, and reformatted at runtime. A Registry holds the
// domains and applies one Config to all of them in a single step, which is
// how command-line flags and configuration files take effect:
//
//	reg := dlog.New(dlog.WithConsole())
//	hw := reg.Domain("hw")
//	hw.Info("controller found: %s", name)
//
//	// Later, e.g. after flag parsing:
//	reg.Apply(dlog.Config{Levels: core.LevelsAll, Color: false})
//
// The cmdargs package resolves --verbose, --quiet, --verbosity-level, and
// --debug-levels flags into a Config; the configuration package does the
// same for JSON files and can re-apply on file change.
package dlog

import (
	"sync/atomic"

	"github.com/willibrandon/dlog/core"
)

// DefaultDomain is the domain used by the package-level logging functions.
const DefaultDomain = "default"

var defaultRegistry atomic.Pointer[Registry]

func init() {
	defaultRegistry.Store(New())
}

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry {
	return defaultRegistry.Load()
}

// SetDefault replaces the process-wide registry. Sinks of the previous
// registry are not closed; close it explicitly if needed.
func SetDefault(r *Registry) {
	if r == nil {
		return
	}
	defaultRegistry.Store(r)
}

// Dump writes a dump-level message to the default domain.
func Dump(format string, args ...any) {
	Default().Domain(DefaultDomain).Dump(format, args...)
}

// Info writes an info-level message to the default domain.
func Info(format string, args ...any) {
	Default().Domain(DefaultDomain).Info(format, args...)
}

// Warn writes a warn-level message to the default domain.
func Warn(format string, args ...any) {
	Default().Domain(DefaultDomain).Warn(format, args...)
}

// Error writes an error-level message to the default domain.
func Error(format string, args ...any) {
	Default().Domain(DefaultDomain).Error(format, args...)
}

// Fatal writes a fatal-level message to the default domain. Like
// Domain.Fatal it does not terminate the process.
func Fatal(format string, args ...any) {
	Default().Domain(DefaultDomain).Fatal(format, args...)
}

// Indent increases the indentation depth of the default registry.
func Indent() {
	Default().Indent()
}

// Unindent decreases the indentation depth of the default registry.
func Unindent() {
	Default().Unindent()
}

// Enabled reports whether the default domain emits entries at the given
// level.
func Enabled(level core.Level) bool {
	return Default().Domain(DefaultDomain).Enabled(level)
}
