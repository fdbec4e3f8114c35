package sinks

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/selflog"
)

// AsyncOptions configures the async sink wrapper.
type AsyncOptions struct {
	// BufferSize is the size of the channel buffer for log entries.
	BufferSize int

	// OverflowStrategy defines what to do when the buffer is full.
	OverflowStrategy OverflowStrategy

	// OnError is called when the wrapped sink panics in the background worker.
	OnError func(error)

	// ShutdownTimeout is the maximum time to wait for pending entries during shutdown.
	ShutdownTimeout time.Duration
}

// OverflowStrategy defines what to do when the async buffer is full.
type OverflowStrategy int

const (
	// OverflowBlock blocks the caller until space is available.
	OverflowBlock OverflowStrategy = iota

	// OverflowDrop drops the newest entries when the buffer is full.
	OverflowDrop

	// OverflowDropOldest drops the oldest entries to make room for new ones.
	OverflowDropOldest
)

// AsyncSink wraps another sink to provide asynchronous, non-blocking logging.
type AsyncSink struct {
	wrapped core.Sink
	options AsyncOptions
	entries chan core.Entry
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup

	// Metrics
	dropped   atomic.Uint64
	processed atomic.Uint64
}

// NewAsyncSink creates a new async sink wrapper around the given sink.
func NewAsyncSink(wrapped core.Sink, options AsyncOptions) *AsyncSink {
	// Apply defaults
	if options.BufferSize <= 0 {
		options.BufferSize = 1000
	}
	if options.ShutdownTimeout <= 0 {
		options.ShutdownTimeout = 30 * time.Second
	}

	ctx, cancel := context.WithCancel(context.Background())

	sink := &AsyncSink{
		wrapped: wrapped,
		options: options,
		entries: make(chan core.Entry, options.BufferSize),
		ctx:     ctx,
		cancel:  cancel,
	}

	sink.wg.Add(1)
	go sink.worker()

	return sink
}

// Emit sends a log entry to the async buffer.
func (as *AsyncSink) Emit(entry *core.Entry) {
	select {
	case as.entries <- *entry:
		// Entry queued successfully

	default:
		// Buffer is full, apply overflow strategy
		switch as.options.OverflowStrategy {
		case OverflowBlock:
			select {
			case as.entries <- *entry:
			case <-as.ctx.Done():
				// Shutting down, drop the entry
				as.dropped.Add(1)
			}

		case OverflowDrop:
			as.dropped.Add(1)
			if selflog.IsEnabled() {
				dropped := as.dropped.Load()
				if dropped == 1 || dropped%1000 == 0 { // Log first drop and every 1000th
					selflog.Printf("[async] buffer full, dropped %d entries total", dropped)
				}
			}

		case OverflowDropOldest:
			select {
			case <-as.entries:
				// Removed oldest, now try to add the new one
				select {
				case as.entries <- *entry:
				default:
					as.dropped.Add(1)
				}
			default:
				// Couldn't remove oldest, drop the new entry
				as.dropped.Add(1)
			}
		}
	}
}

// Close shuts down the async sink and waits for pending entries.
func (as *AsyncSink) Close() error {
	as.cancel()

	// Wait for worker to finish with timeout
	done := make(chan struct{})
	go func() {
		as.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// Worker finished
	case <-time.After(as.options.ShutdownTimeout):
		return fmt.Errorf("timeout waiting for async sink to shut down")
	}

	return as.wrapped.Close()
}

// worker is the background goroutine that processes entries.
func (as *AsyncSink) worker() {
	defer as.wg.Done()

	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[async] worker panic: %v", r)
			}
			if as.options.OnError != nil {
				as.options.OnError(fmt.Errorf("worker panic: %v", r))
			}
		}
	}()

	for {
		select {
		case entry := <-as.entries:
			as.emitOne(entry)

		case <-as.ctx.Done():
			// Shutting down, drain remaining entries
			for {
				select {
				case entry := <-as.entries:
					as.emitOne(entry)
				default:
					return
				}
			}
		}
	}
}

// emitOne forwards a single entry to the wrapped sink.
func (as *AsyncSink) emitOne(entry core.Entry) {
	defer func() {
		if r := recover(); r != nil {
			if selflog.IsEnabled() {
				selflog.Printf("[async] wrapped sink panic: %v", r)
			}
			if as.options.OnError != nil {
				as.options.OnError(fmt.Errorf("panic in wrapped sink: %v", r))
			}
		}
	}()

	as.wrapped.Emit(&entry)
	as.processed.Add(1)
}

// Dropped returns the number of entries dropped due to overflow.
func (as *AsyncSink) Dropped() uint64 {
	return as.dropped.Load()
}

// Processed returns the number of entries forwarded to the wrapped sink.
func (as *AsyncSink) Processed() uint64 {
	return as.processed.Load()
}

// WaitForEmpty blocks until the async buffer is empty or the context is
// cancelled. This is useful for testing.
func (as *AsyncSink) WaitForEmpty(ctx context.Context) error {
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if len(as.entries) == 0 {
				return nil
			}
		}
	}
}
