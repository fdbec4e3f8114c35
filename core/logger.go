package core

// DomainLogger is the writing surface of a single domain. It is what the
// interop bridges build on, so they depend only on this package.
type DomainLogger interface {
	// Name returns the domain name.
	Name() string

	// Enabled reports whether the domain's channel for the given level is
	// currently enabled.
	Enabled(level Level) bool

	// Write formats the message and emits it through the domain's channel
	// for the given level. It is a no-op when the channel is disabled.
	Write(level Level, format string, args ...any)
}
