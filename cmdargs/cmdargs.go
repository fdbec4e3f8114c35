// Package cmdargs turns command-line flags into registry configuration.
//
// An Args value collects the raw flag state: --verbose, --quiet,
// --verbosity-level, --debug-levels, and the colorize pair. Resolve condenses
// those possibly conflicting inputs into one dlog.Config using a fixed
// precedence order, and Apply pushes the result into a registry:
//
//	args := cmdargs.New()
//	args.AddFlags(pflag.CommandLine)
//	pflag.Parse()
//	args.Apply(dlog.Default())
//
// Resolution is total: contradictory flags, out-of-range verbosity values,
// and unknown level names all produce a defined configuration rather than
// an error.
package cmdargs

import (
	"fmt"
	"strings"

	"github.com/willibrandon/dlog"
	"github.com/willibrandon/dlog/core"
)

// Args holds the raw command-line logging options before resolution.
// The zero value is not ready to use; construct with New so platform
// defaults are applied.
type Args struct {
	// Verbose output; same effect as VerbosityLevel 5.
	Verbose bool

	// Quiet disables logging; same effect as VerbosityLevel 0.
	Quiet bool

	// VerbosityLevel selects how much is logged, nominally 0 to 5.
	// Out-of-range values are clamped by comparison during resolution.
	VerbosityLevel int

	// Levels lists level names to enable exactly, bypassing the other
	// fields. Unknown names are ignored.
	Levels []string

	// Colorize enables color format flags on all channels.
	Colorize bool
}

// New returns Args carrying the platform defaults: verbosity level 3 and
// colorized output, except on Windows where verbose logging is on and color
// is off. Debug builds (-tags debug) default the verbosity level to 5.
func New() *Args {
	return &Args{
		Verbose:        defaultVerbose,
		VerbosityLevel: defaultVerbosityLevel,
		Colorize:       defaultColorize,
	}
}

// Resolve condenses the raw options into one configuration. Exactly one of
// four branches decides the level set:
//
//  1. Explicit level names given: their bits, and nothing else.
//  2. Quiet: nothing, even if verbose is also set.
//  3. Verbose: everything.
//  4. Otherwise the verbosity level: each step past 0 adds the next level,
//     from fatal down to dump. 0 and below enable nothing, 5 and above
//     enable everything.
//
// Resolve is pure and never fails.
func (a *Args) Resolve() dlog.Config {
	var levels core.LevelSet

	switch {
	case len(a.Levels) > 0:
		levels = core.LevelSetOf(a.Levels...)

	case a.Quiet:
		levels = core.LevelsNone

	case a.Verbose:
		levels = core.LevelsAll

	default:
		levels = core.LevelsNone
		if a.VerbosityLevel > 0 {
			levels = levels.With(core.FatalLevel)
		}
		if a.VerbosityLevel > 1 {
			levels = levels.With(core.ErrorLevel)
		}
		if a.VerbosityLevel > 2 {
			levels = levels.With(core.WarnLevel)
		}
		if a.VerbosityLevel > 3 {
			levels = levels.With(core.InfoLevel)
		}
		if a.VerbosityLevel > 4 {
			levels = levels.With(core.DumpLevel)
		}
	}

	return dlog.Config{Levels: levels, Color: a.Colorize}
}

// Apply resolves the options and propagates the result to every channel of
// every domain in the registry.
func (a *Args) Apply(r *dlog.Registry) {
	r.Apply(a.Resolve())
}

// Dump renders the resolved state as human-readable lines for diagnostics.
func (a *Args) Dump() string {
	cfg := a.Resolve()

	var sb strings.Builder
	fmt.Fprintf(&sb, "\tlevels_enabled: %s\n", cfg.Levels)
	fmt.Fprintf(&sb, "\tdebug_colorize: %t\n", cfg.Color)
	return sb.String()
}
