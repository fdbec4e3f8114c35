package sinks

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/selflog"
)

// ConsoleSink writes log entries to the console.
//
// Which parts of an entry are rendered is controlled by the entry's format
// flags, so a registry-wide format change takes effect without touching the
// sink. Color is emitted only when the entry carries the color flag and the
// sink's writer can display it.
type ConsoleSink struct {
	output       io.Writer
	mu           sync.Mutex
	theme        *Theme
	colorCapable bool
}

// NewConsoleSink creates a new console sink that writes to stderr.
func NewConsoleSink() *ConsoleSink {
	// Enable VT processing on Windows for ANSI colors
	enableWindowsVTProcessing()

	return &ConsoleSink{
		output:       os.Stderr,
		theme:        DefaultTheme(),
		colorCapable: shouldUseColor(os.Stderr),
	}
}

// NewConsoleSinkWithWriter creates a new console sink with a custom writer.
func NewConsoleSinkWithWriter(w io.Writer) *ConsoleSink {
	return &ConsoleSink{
		output:       w,
		theme:        DefaultTheme(),
		colorCapable: shouldUseColor(w),
	}
}

// NewConsoleSinkWithTheme creates a new console sink with a custom theme.
func NewConsoleSinkWithTheme(theme *Theme) *ConsoleSink {
	// Enable VT processing on Windows for ANSI colors
	enableWindowsVTProcessing()

	sink := &ConsoleSink{
		output:       os.Stderr,
		theme:        theme,
		colorCapable: shouldUseColor(os.Stderr),
	}

	// A colorless theme disables color output entirely
	if !theme.hasColors() {
		sink.colorCapable = false
	}

	return sink
}

// SetTheme updates the console theme.
func (cs *ConsoleSink) SetTheme(theme *Theme) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.theme = theme
}

// SetForceColor overrides terminal detection and forces color on or off.
func (cs *ConsoleSink) SetForceColor(useColor bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.colorCapable = useColor
}

// Emit writes the log entry to the console.
func (cs *ConsoleSink) Emit(entry *core.Entry) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	useColor := cs.colorCapable && entry.Format.Has(core.FormatColor)
	line := cs.formatEntry(entry, useColor)

	if _, err := fmt.Fprintln(cs.output, line); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[console] write failed: %v", err)
		}
	}
}

// Close releases any resources held by the sink.
func (cs *ConsoleSink) Close() error {
	// Nothing to close for console sink
	return nil
}

// formatEntry renders an entry according to its format flags.
func (cs *ConsoleSink) formatEntry(entry *core.Entry, useColor bool) string {
	var parts []string

	if entry.Format.Has(core.FormatTimestamp) {
		timestampPart := "[" + entry.Timestamp.Format(cs.theme.TimestampFormat) + "]"
		parts = append(parts, colorize(timestampPart, cs.theme.TimestampColor, useColor))
	}

	if entry.Format.Has(core.FormatLevel) {
		levelPart := fmt.Sprintf(cs.theme.LevelFormat, formatLevel(entry.Level))
		parts = append(parts, colorize(levelPart, cs.theme.GetLevelColor(entry.Level), useColor))
	}

	if entry.Format.Has(core.FormatDomain) && entry.Domain != "" {
		domainPart := "(" + entry.Domain + ")"
		parts = append(parts, colorize(domainPart, cs.theme.DomainColor, useColor))
	}

	message := entry.Message
	if entry.Format.Has(core.FormatIndent) && entry.Indent > 0 {
		message = strings.Repeat("  ", entry.Indent) + message
	}
	parts = append(parts, colorize(message, cs.theme.MessageColor, useColor))

	return strings.Join(parts, " ")
}

// formatLevel converts a log level to its short display form.
func formatLevel(level core.Level) string {
	switch level {
	case core.DumpLevel:
		return "DMP"
	case core.InfoLevel:
		return "INF"
	case core.WarnLevel:
		return "WRN"
	case core.ErrorLevel:
		return "ERR"
	case core.FatalLevel:
		return "FTL"
	default:
		return "UNK"
	}
}
