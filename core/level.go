package core

import "strings"

// Level is a single severity flag. Levels are bit flags rather than an
// ordered scale: any combination of them may be enabled at once, which is
// what LevelSet represents.
type Level uint8

const (
	// DumpLevel is the most detailed level, for data dumps and traces.
	DumpLevel Level = 1 << iota

	// InfoLevel is for informational messages.
	InfoLevel

	// WarnLevel is for warnings.
	WarnLevel

	// ErrorLevel is for errors.
	ErrorLevel

	// FatalLevel is for fatal errors. Logging at this level does not
	// terminate the process; it is a severity, not an action.
	FatalLevel
)

// levelNames maps each level bit to its canonical name, in ascending
// severity order.
var levelNames = []struct {
	level Level
	name  string
}{
	{DumpLevel, "dump"},
	{InfoLevel, "info"},
	{WarnLevel, "warn"},
	{ErrorLevel, "error"},
	{FatalLevel, "fatal"},
}

// String returns the canonical lower-case name of the level, or "unknown"
// for values that are not exactly one defined bit.
func (l Level) String() string {
	for _, ln := range levelNames {
		if ln.level == l {
			return ln.name
		}
	}
	return "unknown"
}

// ParseLevel maps a level name to its bit. Matching is case-insensitive.
// The second return value reports whether the name was recognized; there is
// no error outcome, unrecognized names are simply not levels.
func ParseLevel(name string) (Level, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, ln := range levelNames {
		if ln.name == name {
			return ln.level, true
		}
	}
	return 0, false
}

// OrderedLevels returns all defined levels in ascending severity order.
func OrderedLevels() []Level {
	levels := make([]Level, len(levelNames))
	for i, ln := range levelNames {
		levels[i] = ln.level
	}
	return levels
}

// LevelSet is a bitmask of enabled levels. Only the five defined level bits
// can be set; the constructors and operations below maintain that invariant.
type LevelSet uint8

const (
	// LevelsNone enables no levels.
	LevelsNone LevelSet = 0

	// LevelsAll enables every level.
	LevelsAll = LevelSet(DumpLevel | InfoLevel | WarnLevel | ErrorLevel | FatalLevel)

	// LevelsDefault is the out-of-the-box set: warnings and worse.
	LevelsDefault = LevelSet(WarnLevel | ErrorLevel | FatalLevel)
)

// LevelSetOf builds a set from level names, ORing the bit of every
// recognized name. Unrecognized names contribute nothing and cause no error;
// duplicates are idempotent.
func LevelSetOf(names ...string) LevelSet {
	set := LevelsNone
	for _, name := range names {
		if level, ok := ParseLevel(name); ok {
			set = set.With(level)
		}
	}
	return set
}

// Has reports whether the set contains the given level bit.
func (s LevelSet) Has(l Level) bool {
	return s&LevelSet(l) != 0
}

// With returns the set with the given level added.
func (s LevelSet) With(l Level) LevelSet {
	return (s | LevelSet(l)) & LevelsAll
}

// Without returns the set with the given level removed.
func (s LevelSet) Without(l Level) LevelSet {
	return s &^ LevelSet(l)
}

// Levels returns the levels present in the set in ascending severity order.
func (s LevelSet) Levels() []Level {
	var levels []Level
	for _, ln := range levelNames {
		if s.Has(ln.level) {
			levels = append(levels, ln.level)
		}
	}
	return levels
}

// String renders the set as "none", "all", or a comma-separated list of
// level names in ascending severity order.
func (s LevelSet) String() string {
	switch s & LevelsAll {
	case LevelsNone:
		return "none"
	case LevelsAll:
		return "all"
	}
	names := make([]string, 0, len(levelNames))
	for _, ln := range levelNames {
		if s.Has(ln.level) {
			names = append(names, ln.name)
		}
	}
	return strings.Join(names, ",")
}
