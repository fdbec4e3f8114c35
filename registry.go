package dlog

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/willibrandon/dlog/core"
)

// Config is one registry-wide logging configuration: which levels are
// enabled and whether output is colorized. Applying a Config reconfigures
// every channel of every domain in one step.
type Config struct {
	Levels core.LevelSet
	Color  bool
}

// Registry owns the process's logging domains and propagates configuration
// to them. Channels created later inherit the registry's current defaults,
// so a Config applied before a subsystem registers its domain still covers
// it.
type Registry struct {
	mu      sync.Mutex
	domains map[string]*Domain
	sinks   []core.Sink
	format  core.Format
	levels  core.LevelSet
	indent  atomic.Int32
}

// Domain returns the domain with the given name, creating it with the
// registry's current defaults if it does not exist yet.
func (r *Registry) Domain(name string) *Domain {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.domains[name]; ok {
		return d
	}
	d := newDomain(name, r, r.levels, r.format, r.sinks)
	r.domains[name] = d
	return d
}

// RemoveDomain deletes a domain from the registry. Handles already held by
// callers keep working with their last-applied configuration.
func (r *Registry) RemoveDomain(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.domains, name)
}

// Domains returns the registered domain names in sorted order.
func (r *Registry) Domains() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Each calls fn for every (domain, level, channel) triple in the registry,
// domains in sorted order, levels from dump to fatal.
func (r *Registry) Each(fn func(domain string, level core.Level, ch *Channel)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.each(fn)
}

// each walks the registry. Caller holds r.mu.
func (r *Registry) each(fn func(domain string, level core.Level, ch *Channel)) {
	names := make([]string, 0, len(r.domains))
	for name := range r.domains {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		d := r.domains[name]
		for i, level := range levelOrder {
			fn(name, level, d.channels[i])
		}
	}
}

// Apply propagates a configuration to every channel of every domain: each
// channel is enabled exactly when its level is in cfg.Levels, and each
// channel's color flag is set or cleared to match cfg.Color. Other format
// flags are left untouched.
//
// The registry defaults are updated too, so domains created afterwards
// start with the same configuration. Apply never fails.
func (r *Registry) Apply(cfg Config) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.levels = cfg.Levels
	if cfg.Color {
		r.format = r.format.With(core.FormatColor)
	} else {
		r.format = r.format.Without(core.FormatColor)
	}

	r.each(func(_ string, level core.Level, ch *Channel) {
		ch.SetEnabled(cfg.Levels.Has(level))

		format := ch.Format()
		if cfg.Color {
			format = format.With(core.FormatColor)
		} else {
			format = format.Without(core.FormatColor)
		}
		ch.SetFormat(format)
	})
}

// Settings returns the registry's current default configuration, as applied
// to newly created domains.
func (r *Registry) Settings() Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Config{
		Levels: r.levels,
		Color:  r.format.Has(core.FormatColor),
	}
}

// Indent increases the indentation depth for subsequent entries. Sinks
// render the depth only for channels carrying the indent format flag.
func (r *Registry) Indent() {
	r.indent.Add(1)
}

// Unindent decreases the indentation depth. It never goes below zero.
func (r *Registry) Unindent() {
	for {
		current := r.indent.Load()
		if current <= 0 {
			return
		}
		if r.indent.CompareAndSwap(current, current-1) {
			return
		}
	}
}

// IndentDepth returns the current indentation depth.
func (r *Registry) IndentDepth() int {
	return int(r.indent.Load())
}

// Close closes every sink reachable from the registry exactly once and
// returns the first error encountered.
func (r *Registry) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	seen := make(map[core.Sink]bool)
	var firstErr error

	closeSink := func(s core.Sink) {
		if seen[s] {
			return
		}
		seen[s] = true
		if err := s.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, d := range r.domains {
		for _, ch := range d.channels {
			for _, s := range ch.Sinks() {
				closeSink(s)
			}
		}
	}
	for _, s := range r.sinks {
		closeSink(s)
	}

	return firstErr
}
