package core

// Sink outputs entries to a destination.
type Sink interface {
	// Emit writes the entry to the sink's destination.
	Emit(e *Entry)

	// Close releases any resources held by the sink.
	Close() error
}
