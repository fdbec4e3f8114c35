package sinks

import (
	"sync"

	"github.com/willibrandon/dlog/core"
)

// MemorySink stores log entries in memory, primarily for testing.
type MemorySink struct {
	mu      sync.RWMutex
	entries []core.Entry
}

// NewMemorySink creates a new memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Emit stores a copy of the log entry.
func (ms *MemorySink) Emit(entry *core.Entry) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries = append(ms.entries, *entry)
}

// Close releases any resources held by the sink.
func (ms *MemorySink) Close() error {
	return nil
}

// Entries returns a copy of all stored entries.
func (ms *MemorySink) Entries() []core.Entry {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]core.Entry, len(ms.entries))
	copy(out, ms.entries)
	return out
}

// Count returns the number of stored entries.
func (ms *MemorySink) Count() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.entries)
}

// Clear removes all stored entries.
func (ms *MemorySink) Clear() {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.entries = ms.entries[:0]
}

// Find returns the first entry matching the predicate, or nil.
func (ms *MemorySink) Find(match func(core.Entry) bool) *core.Entry {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	for i := range ms.entries {
		if match(ms.entries[i]) {
			e := ms.entries[i]
			return &e
		}
	}
	return nil
}

// Last returns the most recently stored entry, or nil if empty.
func (ms *MemorySink) Last() *core.Entry {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	if len(ms.entries) == 0 {
		return nil
	}
	e := ms.entries[len(ms.entries)-1]
	return &e
}
