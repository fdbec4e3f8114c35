package sinks

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/willibrandon/dlog/core"
)

// Color represents an ANSI color code.
type Color string

const (
	// Basic colors
	ColorReset Color = "\033[0m"
	ColorBold  Color = "\033[1m"
	ColorDim   Color = "\033[2m"

	// Foreground colors
	ColorBlack   Color = "\033[30m"
	ColorRed     Color = "\033[31m"
	ColorGreen   Color = "\033[32m"
	ColorYellow  Color = "\033[33m"
	ColorBlue    Color = "\033[34m"
	ColorMagenta Color = "\033[35m"
	ColorCyan    Color = "\033[36m"
	ColorWhite   Color = "\033[37m"

	// Bright foreground colors
	ColorBrightBlack   Color = "\033[90m"
	ColorBrightRed     Color = "\033[91m"
	ColorBrightGreen   Color = "\033[92m"
	ColorBrightYellow  Color = "\033[93m"
	ColorBrightBlue    Color = "\033[94m"
	ColorBrightMagenta Color = "\033[95m"
	ColorBrightCyan    Color = "\033[96m"
	ColorBrightWhite   Color = "\033[97m"
)

// Ansi256Color creates an ANSI 256-color code.
func Ansi256Color(n int) Color {
	return Color(fmt.Sprintf("\033[38;5;%dm", n))
}

// Theme defines the colors and formatting for console output.
type Theme struct {
	// Level colors
	DumpColor  Color
	InfoColor  Color
	WarnColor  Color
	ErrorColor Color
	FatalColor Color

	// Element colors
	TimestampColor Color
	DomainColor    Color
	MessageColor   Color

	// Formatting
	LevelFormat     string // Format string for level, e.g., "[%s]" or "%s:"
	TimestampFormat string // Time format string
}

// DefaultTheme returns the default console theme.
func DefaultTheme() *Theme {
	return &Theme{
		DumpColor:  ColorBrightBlack,
		InfoColor:  ColorGreen,
		WarnColor:  ColorYellow,
		ErrorColor: ColorRed,
		FatalColor: ColorBrightRed + ColorBold,

		TimestampColor: ColorBrightBlack,
		DomainColor:    ColorCyan,
		MessageColor:   ColorReset,

		LevelFormat:     "[%s]",
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// LiteTheme returns a minimalist theme with subtle colors.
func LiteTheme() *Theme {
	return &Theme{
		DumpColor:  ColorDim,
		InfoColor:  ColorReset,
		WarnColor:  ColorYellow,
		ErrorColor: ColorRed,
		FatalColor: ColorRed + ColorBold,

		TimestampColor: ColorDim,
		DomainColor:    ColorDim,
		MessageColor:   ColorReset,

		LevelFormat:     "%s",
		TimestampFormat: "15:04:05",
	}
}

// NoColorTheme returns a theme without any colors.
func NoColorTheme() *Theme {
	return &Theme{
		LevelFormat:     "[%s]",
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// Soft256Theme returns a theme using ANSI 256 colors that are easy on the
// eyes, for terminals that support them.
func Soft256Theme() *Theme {
	return &Theme{
		DumpColor:  Ansi256Color(243), // Gray
		InfoColor:  Ansi256Color(15),  // Bright white
		WarnColor:  Ansi256Color(11),  // Yellow
		ErrorColor: Ansi256Color(9),   // Red
		FatalColor: Ansi256Color(9) + ColorBold,

		TimestampColor: Ansi256Color(243),
		DomainColor:    Ansi256Color(51), // Cyan
		MessageColor:   Ansi256Color(15),

		LevelFormat:     "%s",
		TimestampFormat: "15:04:05",
	}
}

// AutoTheme returns Soft256Theme for 256-color terminals or DefaultTheme otherwise.
func AutoTheme() *Theme {
	if supports256Colors() {
		return Soft256Theme()
	}
	return DefaultTheme()
}

// GetLevelColor returns the color for a specific log level.
func (t *Theme) GetLevelColor(level core.Level) Color {
	switch level {
	case core.DumpLevel:
		return t.DumpColor
	case core.InfoLevel:
		return t.InfoColor
	case core.WarnLevel:
		return t.WarnColor
	case core.ErrorLevel:
		return t.ErrorColor
	case core.FatalLevel:
		return t.FatalColor
	default:
		return ColorReset
	}
}

// hasColors reports whether the theme defines any level colors at all.
func (t *Theme) hasColors() bool {
	return t.DumpColor != "" || t.InfoColor != "" || t.WarnColor != "" ||
		t.ErrorColor != "" || t.FatalColor != ""
}

// shouldUseColor determines if color output should be used for a writer.
func shouldUseColor(w io.Writer) bool {
	// DLOG_FORCE_COLOR overrides all other detection
	if forceColor := os.Getenv("DLOG_FORCE_COLOR"); forceColor != "" {
		switch strings.ToLower(forceColor) {
		case "none", "0", "false", "off":
			return false
		case "8", "16", "256", "true", "on":
			return true
		}
	}

	// Honor the NO_COLOR convention
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	// On Windows, only modern terminals handle ANSI sequences
	if runtime.GOOS == "windows" {
		if _, ok := os.LookupEnv("WT_SESSION"); ok {
			return true
		}
		if _, ok := os.LookupEnv("ConEmuPID"); ok {
			return true
		}
		return false
	}

	// Colors only make sense when writing to a terminal
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// supports256Colors checks if the terminal supports 256 colors.
func supports256Colors() bool {
	if forceColor := os.Getenv("DLOG_FORCE_COLOR"); forceColor != "" {
		switch strings.ToLower(forceColor) {
		case "8", "16":
			return false
		case "256":
			return true
		}
	}

	term := os.Getenv("TERM")
	if strings.Contains(term, "256color") || strings.Contains(term, "256colour") {
		return true
	}

	colorTerm := os.Getenv("COLORTERM")
	if colorTerm == "truecolor" || colorTerm == "24bit" {
		return true
	}

	if runtime.GOOS == "windows" {
		if _, ok := os.LookupEnv("WT_SESSION"); ok {
			return true
		}
		if _, ok := os.LookupEnv("ConEmuPID"); ok {
			return true
		}
	}

	return false
}

// colorize applies color to a string if colors are enabled.
func colorize(s string, color Color, useColor bool) string {
	if !useColor || color == "" {
		return s
	}
	return string(color) + s + string(ColorReset)
}
