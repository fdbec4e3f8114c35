package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/willibrandon/dlog/core"
)

// SlogHandler implements slog.Handler backed by a dlog domain
type SlogHandler struct {
	logger core.DomainLogger
	attrs  []slog.Attr
	groups []string
}

var _ slog.Handler = (*SlogHandler)(nil)

// NewSlogHandler creates a new slog.Handler that writes to the provided domain
func NewSlogHandler(logger core.DomainLogger) *SlogHandler {
	return &SlogHandler{
		logger: logger,
	}
}

// Enabled reports whether the handler handles records at the given level
func (h *SlogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.logger.Enabled(slogLevelToDlog(level))
}

// Handle handles the Record
func (h *SlogHandler) Handle(_ context.Context, record slog.Record) error {
	level := slogLevelToDlog(record.Level)

	// Collect attributes from WithAttrs and the record as key=value pairs
	var pairs []string
	for _, attr := range h.attrs {
		pairs = append(pairs, h.formatAttr(attr))
	}
	record.Attrs(func(attr slog.Attr) bool {
		pairs = append(pairs, h.formatAttr(attr))
		return true
	})

	message := record.Message
	if len(pairs) > 0 {
		message += " " + strings.Join(pairs, " ")
	}

	h.logger.Write(level, "%s", message)
	return nil
}

// WithAttrs returns a new Handler whose attributes consist of
// both the receiver's attributes and the arguments
func (h *SlogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	copy(newAttrs[len(h.attrs):], attrs)
	return &SlogHandler{
		logger: h.logger,
		attrs:  newAttrs,
		groups: h.groups,
	}
}

// WithGroup returns a new Handler with the given group appended to
// the receiver's existing groups
func (h *SlogHandler) WithGroup(name string) slog.Handler {
	newGroups := make([]string, len(h.groups)+1)
	copy(newGroups, h.groups)
	newGroups[len(h.groups)] = name
	return &SlogHandler{
		logger: h.logger,
		attrs:  h.attrs,
		groups: newGroups,
	}
}

// formatAttr formats an attribute as key=value with the group prefix
func (h *SlogHandler) formatAttr(attr slog.Attr) string {
	return fmt.Sprintf("%s=%v", h.formatKey(attr.Key), attr.Value.Any())
}

// formatKey formats a key with the current group prefix
func (h *SlogHandler) formatKey(key string) string {
	if len(h.groups) == 0 {
		return key
	}
	return strings.Join(h.groups, ".") + "." + key
}

// slogLevelToDlog converts slog levels to dlog levels
func slogLevelToDlog(level slog.Level) core.Level {
	switch {
	case level < slog.LevelInfo:
		return core.DumpLevel
	case level < slog.LevelWarn:
		return core.InfoLevel
	case level < slog.LevelError:
		return core.WarnLevel
	case level == slog.LevelError:
		return core.ErrorLevel
	default:
		return core.FatalLevel
	}
}

// DlogLevelToSlog converts dlog levels to slog levels
func DlogLevelToSlog(level core.Level) slog.Level {
	switch level {
	case core.DumpLevel:
		return slog.LevelDebug
	case core.InfoLevel:
		return slog.LevelInfo
	case core.WarnLevel:
		return slog.LevelWarn
	case core.ErrorLevel:
		return slog.LevelError
	case core.FatalLevel:
		return slog.LevelError + 4
	default:
		return slog.LevelInfo
	}
}
