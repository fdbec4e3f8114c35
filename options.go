package dlog

import (
	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/selflog"
)

// config holds the configuration for building a registry.
type config struct {
	sinks   []core.Sink
	format  core.Format
	levels  core.LevelSet
	domains []string
	err     error // First error encountered during configuration
}

// Option is a functional option for configuring a registry.
type Option func(*config)

// New creates a registry. Without options it writes warn, error, and fatal
// entries for every domain to a console sink on stderr.
//
// Options that construct sinks can fail; the first failure is reported
// through selflog and the failed option is skipped.
func New(options ...Option) *Registry {
	cfg := &config{
		format: core.FormatDefault,
		levels: core.LevelsDefault,
	}

	for _, opt := range options {
		opt(cfg)
	}

	if cfg.err != nil && selflog.IsEnabled() {
		selflog.Printf("[config] registry option failed: %v", cfg.err)
	}

	if len(cfg.sinks) == 0 {
		cfg.sinks = []core.Sink{newDefaultConsoleSink()}
	}

	r := &Registry{
		domains: make(map[string]*Domain),
		sinks:   cfg.sinks,
		format:  cfg.format,
		levels:  cfg.levels,
	}

	for _, name := range cfg.domains {
		d := newDomain(name, r, r.levels, r.format, r.sinks)
		r.domains[name] = d
	}

	return r
}

// WithSink adds a sink receiving entries from every domain.
func WithSink(sink core.Sink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, sink)
	}
}

// WithFormat sets the format flags for all channels. The color flag is
// also controlled at runtime via Apply.
func WithFormat(format core.Format) Option {
	return func(c *config) {
		c.format = format
	}
}

// WithLevels sets the initially enabled level set for all channels.
func WithLevels(levels core.LevelSet) Option {
	return func(c *config) {
		c.levels = levels
	}
}

// WithDomains pre-registers domains so they exist before first use, for
// example so a configuration dump can list them.
func WithDomains(names ...string) Option {
	return func(c *config) {
		c.domains = append(c.domains, names...)
	}
}
