package dlog

import (
	"fmt"

	"github.com/willibrandon/dlog/core"
)

// Domain is a named logging scope, typically one subsystem ("hw", "scsi",
// "config"). A domain carries one channel per level; which channels are live
// is decided by registry-wide configuration, not by the call sites.
//
// Domains are cheap handles: hold one for the life of the subsystem and log
// through it. All methods are safe for concurrent use.
type Domain struct {
	name     string
	registry *Registry
	channels [len(levelOrder)]*Channel
}

var _ core.DomainLogger = (*Domain)(nil)

// levelOrder fixes the channel slot for each level.
var levelOrder = [...]core.Level{
	core.DumpLevel,
	core.InfoLevel,
	core.WarnLevel,
	core.ErrorLevel,
	core.FatalLevel,
}

func levelSlot(level core.Level) int {
	for i, l := range levelOrder {
		if l == level {
			return i
		}
	}
	return -1
}

func newDomain(name string, r *Registry, enabled core.LevelSet, format core.Format, sinks []core.Sink) *Domain {
	d := &Domain{name: name, registry: r}
	for i, level := range levelOrder {
		d.channels[i] = newChannel(enabled.Has(level), format, sinks)
	}
	return d
}

// Name returns the domain name.
func (d *Domain) Name() string {
	return d.name
}

// Channel returns the output channel for the given level, or nil if the
// level is not a single defined level bit.
func (d *Domain) Channel(level core.Level) *Channel {
	slot := levelSlot(level)
	if slot < 0 {
		return nil
	}
	return d.channels[slot]
}

// Enabled reports whether entries at the given level would be emitted.
// Use it to skip expensive message construction:
//
//	if hw.Enabled(core.DumpLevel) {
//	    hw.Dump("raw page: %s", hexdump(page))
//	}
func (d *Domain) Enabled(level core.Level) bool {
	slot := levelSlot(level)
	if slot < 0 {
		return false
	}
	return d.channels[slot].Enabled()
}

// Write formats and emits a message at the given level. Unknown levels are
// silently dropped.
func (d *Domain) Write(level core.Level, format string, args ...any) {
	slot := levelSlot(level)
	if slot < 0 {
		return
	}
	ch := d.channels[slot]
	if !ch.Enabled() {
		return
	}

	// Fast path: no args means the format string is the message
	message := format
	if len(args) > 0 {
		message = fmt.Sprintf(format, args...)
	}

	ch.write(d.name, level, d.registry.IndentDepth(), message)
}

// Dump writes a dump-level message with raw diagnostic detail.
func (d *Domain) Dump(format string, args ...any) {
	d.Write(core.DumpLevel, format, args...)
}

// Info writes an info-level message.
func (d *Domain) Info(format string, args ...any) {
	d.Write(core.InfoLevel, format, args...)
}

// Warn writes a warn-level message.
func (d *Domain) Warn(format string, args ...any) {
	d.Write(core.WarnLevel, format, args...)
}

// Error writes an error-level message.
func (d *Domain) Error(format string, args ...any) {
	d.Write(core.ErrorLevel, format, args...)
}

// Fatal writes a fatal-level message. It does not terminate the process;
// the name describes the severity of what is being reported.
func (d *Domain) Fatal(format string, args ...any) {
	d.Write(core.FatalLevel, format, args...)
}
