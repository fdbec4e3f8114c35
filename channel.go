package dlog

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/willibrandon/dlog/core"
)

// Channel is the output gate for one (domain, level) pair. Every domain owns
// one channel per level; registry-wide configuration flips their enabled and
// format state in place, so loggers held by callers pick up changes without
// being rebuilt.
//
// The enabled flag and format flags are atomic: the logging hot path reads
// them without taking a lock.
type Channel struct {
	enabled atomic.Bool
	format  atomic.Uint32

	mu    sync.RWMutex
	sinks []core.Sink
}

func newChannel(enabled bool, format core.Format, sinks []core.Sink) *Channel {
	ch := &Channel{sinks: sinks}
	ch.enabled.Store(enabled)
	ch.format.Store(uint32(format))
	return ch
}

// Enabled reports whether the channel currently emits entries.
func (ch *Channel) Enabled() bool {
	return ch.enabled.Load()
}

// SetEnabled turns the channel on or off. Takes effect immediately.
func (ch *Channel) SetEnabled(enabled bool) {
	ch.enabled.Store(enabled)
}

// Format returns the channel's current format flags.
func (ch *Channel) Format() core.Format {
	return core.Format(ch.format.Load())
}

// SetFormat replaces the channel's format flags. Takes effect immediately.
func (ch *Channel) SetFormat(format core.Format) {
	ch.format.Store(uint32(format))
}

// Sinks returns a snapshot of the channel's sinks.
func (ch *Channel) Sinks() []core.Sink {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	out := make([]core.Sink, len(ch.sinks))
	copy(out, ch.sinks)
	return out
}

// SetSinks replaces the channel's sinks, overriding the registry defaults
// for this (domain, level) pair alone.
func (ch *Channel) SetSinks(sinks ...core.Sink) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.sinks = sinks
}

// AddSink appends a sink to the channel.
func (ch *Channel) AddSink(sink core.Sink) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.sinks = append(ch.sinks, sink)
}

// write stamps an entry and fans it out to the channel's sinks. The caller
// has already checked Enabled.
func (ch *Channel) write(domain string, level core.Level, indent int, message string) {
	entry := core.Entry{
		Timestamp: time.Now(),
		Domain:    domain,
		Level:     level,
		Message:   message,
		Format:    ch.Format(),
		Indent:    indent,
	}

	ch.mu.RLock()
	defer ch.mu.RUnlock()
	for _, sink := range ch.sinks {
		sink.Emit(&entry)
	}
}
