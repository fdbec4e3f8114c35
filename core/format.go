package core

import "strings"

// Format is a bitmask of output formatting flags. Every channel carries its
// own format; sinks consult the format recorded on each entry when
// rendering.
type Format uint8

const (
	// FormatTimestamp prefixes output with the entry timestamp.
	FormatTimestamp Format = 1 << iota

	// FormatLevel prefixes output with the level name.
	FormatLevel

	// FormatDomain prefixes output with the domain name.
	FormatDomain

	// FormatColor colorizes output on sinks that are able to. This is the
	// bit toggled by configuration propagation; the others are left alone.
	FormatColor

	// FormatIndent honors the registry indentation depth.
	FormatIndent
)

const (
	// FormatNone disables all formatting flags.
	FormatNone Format = 0

	// FormatDefault is the format new channels start with.
	FormatDefault = FormatTimestamp | FormatLevel | FormatDomain | FormatColor

	// FormatAll enables every formatting flag.
	FormatAll = FormatTimestamp | FormatLevel | FormatDomain | FormatColor | FormatIndent
)

// formatNames maps each format bit to its name, in bit order.
var formatNames = []struct {
	format Format
	name   string
}{
	{FormatTimestamp, "timestamp"},
	{FormatLevel, "level"},
	{FormatDomain, "domain"},
	{FormatColor, "color"},
	{FormatIndent, "indent"},
}

// Has reports whether all bits of the given flag are set.
func (f Format) Has(bit Format) bool {
	return f&bit == bit
}

// With returns the format with the given bits added.
func (f Format) With(bit Format) Format {
	return f | bit
}

// Without returns the format with the given bits removed.
func (f Format) Without(bit Format) Format {
	return f &^ bit
}

// String renders the format as "none" or a pipe-separated list of flag
// names.
func (f Format) String() string {
	if f == FormatNone {
		return "none"
	}
	names := make([]string, 0, len(formatNames))
	for _, fn := range formatNames {
		if f.Has(fn.format) {
			names = append(names, fn.name)
		}
	}
	return strings.Join(names, "|")
}

// ParseFormat maps a flag name to its bit, case-insensitively. The second
// return value reports whether the name was recognized.
func ParseFormat(name string) (Format, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, fn := range formatNames {
		if fn.name == name {
			return fn.format, true
		}
	}
	return 0, false
}
