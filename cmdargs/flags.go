package cmdargs

import (
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// AddFlags registers the logging flags on the given flag set, bound to this
// Args value. Flags are processed in command-line order, so when both
// --debug-colorize and --debug-no-colorize appear the last one wins.
func (a *Args) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&a.Verbose, "verbose", "v", a.Verbose,
		"Enable verbose logging; same as --verbosity-level 5")
	fs.BoolVarP(&a.Quiet, "quiet", "q", a.Quiet,
		"Disable logging; same as --verbosity-level 0")
	fs.IntVarP(&a.VerbosityLevel, "verbosity-level", "b", a.VerbosityLevel,
		"Set verbosity level [0-5]")
	fs.Var(&levelsValue{target: &a.Levels}, "debug-levels",
		"Enable only these logging levels; the argument is a comma-separated list of (dump, info, warn, error, fatal)")

	fs.Var(&boolFlagValue{target: &a.Colorize}, "debug-colorize", "Enable colored output")
	fs.Lookup("debug-colorize").NoOptDefVal = "true"

	fs.Var(&boolFlagValue{target: &a.Colorize, invert: true}, "debug-no-colorize", "Disable colored output")
	fs.Lookup("debug-no-colorize").NoOptDefVal = "true"
}

// levelsValue accumulates level names from repeated or comma-separated
// --debug-levels arguments. Empty segments are skipped; name validation
// happens later, during resolution.
type levelsValue struct {
	target *[]string
}

func (v *levelsValue) String() string {
	if v.target == nil {
		return ""
	}
	return strings.Join(*v.target, ",")
}

func (v *levelsValue) Set(raw string) error {
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		*v.target = append(*v.target, part)
	}
	return nil
}

func (v *levelsValue) Type() string {
	return "levels"
}

// boolFlagValue writes a bool flag into a shared target, optionally
// inverted. It backs the --debug-colorize / --debug-no-colorize pair, which
// both control the same boolean from opposite directions.
type boolFlagValue struct {
	target *bool
	invert bool
}

func (v *boolFlagValue) String() string {
	if v.target == nil {
		return "false"
	}
	value := *v.target
	if v.invert {
		value = !value
	}
	return strconv.FormatBool(value)
}

func (v *boolFlagValue) Set(raw string) error {
	parsed, err := strconv.ParseBool(raw)
	if err != nil {
		return err
	}
	if v.invert {
		parsed = !parsed
	}
	*v.target = parsed
	return nil
}

func (v *boolFlagValue) Type() string {
	return "bool"
}
