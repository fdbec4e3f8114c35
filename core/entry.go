package core

import "time"

// Entry is a single log line on its way to the sinks. The emitting channel
// stamps it with its own format flags and the registry indentation depth at
// write time, so a sink never has to reach back into the registry.
type Entry struct {
	// Timestamp is when the entry was written.
	Timestamp time.Time

	// Domain is the name of the domain the entry was written under.
	Domain string

	// Level is the severity of the entry; always exactly one level bit.
	Level Level

	// Message is the fully rendered message text.
	Message string

	// Format is the emitting channel's format flags at write time.
	Format Format

	// Indent is the registry indentation depth at write time.
	Indent int
}
