package handler

import (
	"fmt"
	"strings"

	"github.com/go-logr/logr"

	"github.com/willibrandon/dlog/core"
)

// LogrSink implements logr.LogSink backed by a dlog domain. WithName maps
// to dotted subdomains, so each named logger gets its own channels.
type LogrSink struct {
	logger core.DomainLogger
	lookup func(name string) core.DomainLogger
	name   string
	values []any
}

var _ logr.LogSink = (*LogrSink)(nil)

// NewLogrSink creates a new logr.LogSink writing to the provided domain.
// lookup resolves WithName subdomains; it may be nil, in which case names
// only prefix messages.
func NewLogrSink(logger core.DomainLogger, lookup func(name string) core.DomainLogger) *LogrSink {
	return &LogrSink{
		logger: logger,
		lookup: lookup,
	}
}

// Init receives optional information about the logr library
func (s *LogrSink) Init(info logr.RuntimeInfo) {
}

// Enabled tests whether this LogSink is enabled at the given V-level
func (s *LogrSink) Enabled(level int) bool {
	return s.logger.Enabled(logrLevelToDlog(level))
}

// Info logs a non-error message with the given key/value pairs
func (s *LogrSink) Info(level int, msg string, keysAndValues ...any) {
	s.logger.Write(logrLevelToDlog(level), "%s", s.buildMessage(msg, keysAndValues))
}

// Error logs an error message with the given key/value pairs
func (s *LogrSink) Error(err error, msg string, keysAndValues ...any) {
	message := s.buildMessage(msg, keysAndValues)
	if err != nil {
		message += " error=" + err.Error()
	}
	s.logger.Write(core.ErrorLevel, "%s", message)
}

// WithValues returns a new LogSink with additional key/value pairs
func (s *LogrSink) WithValues(keysAndValues ...any) logr.LogSink {
	values := make([]any, len(s.values)+len(keysAndValues))
	copy(values, s.values)
	copy(values[len(s.values):], keysAndValues)
	return &LogrSink{
		logger: s.logger,
		lookup: s.lookup,
		name:   s.name,
		values: values,
	}
}

// WithName returns a new LogSink with the specified name appended. When a
// lookup is available the sink switches to the subdomain of that name.
func (s *LogrSink) WithName(name string) logr.LogSink {
	newName := name
	if s.name != "" {
		newName = s.name + "." + name
	}

	logger := s.logger
	if s.lookup != nil {
		logger = s.lookup(newName)
	}

	return &LogrSink{
		logger: logger,
		lookup: s.lookup,
		name:   newName,
		values: s.values,
	}
}

// buildMessage appends stored and call-site key/value pairs to the message
func (s *LogrSink) buildMessage(msg string, keysAndValues []any) string {
	kvs := s.values
	if len(keysAndValues) > 0 {
		kvs = make([]any, len(s.values)+len(keysAndValues))
		copy(kvs, s.values)
		copy(kvs[len(s.values):], keysAndValues)
	}
	if len(kvs) == 0 {
		return msg
	}

	var pairs []string
	for i := 0; i < len(kvs); i += 2 {
		if i+1 >= len(kvs) {
			// Odd number of arguments, record the key with no value
			pairs = append(pairs, fmt.Sprintf("%v=", kvs[i]))
			break
		}
		pairs = append(pairs, fmt.Sprintf("%v=%v", kvs[i], kvs[i+1]))
	}

	return msg + " " + strings.Join(pairs, " ")
}

// logrLevelToDlog converts logr V-levels to dlog levels.
// logr levels: 0 is info, higher is more verbose
func logrLevelToDlog(level int) core.Level {
	if level > 0 {
		return core.DumpLevel
	}
	return core.InfoLevel
}
