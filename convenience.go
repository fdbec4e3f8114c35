package dlog

import (
	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/sinks"
)

// Convenience options for common configurations

// newDefaultConsoleSink builds the sink used when no sink option is given.
func newDefaultConsoleSink() core.Sink {
	return sinks.NewConsoleSink()
}

// WithConsole adds a console sink writing to stderr.
func WithConsole() Option {
	return WithSink(sinks.NewConsoleSink())
}

// WithConsoleTheme adds a console sink with a custom theme.
func WithConsoleTheme(theme *sinks.Theme) Option {
	return WithSink(sinks.NewConsoleSinkWithTheme(theme))
}

// WithFile adds a file sink appending to the given path.
func WithFile(path string) Option {
	return func(c *config) {
		if c.err != nil {
			return // Don't process if already errored
		}
		sink, err := sinks.NewFileSink(path)
		if err != nil {
			c.err = err
			return
		}
		c.sinks = append(c.sinks, sink)
	}
}

// WithMemory adds the given memory sink, typically for tests.
func WithMemory(sink *sinks.MemorySink) Option {
	return WithSink(sink)
}

// WithAsync wraps a sink for asynchronous, non-blocking delivery.
func WithAsync(wrapped core.Sink, options sinks.AsyncOptions) Option {
	return WithSink(sinks.NewAsyncSink(wrapped, options))
}
