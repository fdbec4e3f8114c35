package sinks

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/willibrandon/dlog/core"
)

// blockingSink blocks in Emit until released, recording messages it saw.
type blockingSink struct {
	release chan struct{}
	mu      sync.Mutex
	seen    []string
}

func newBlockingSink() *blockingSink {
	return &blockingSink{release: make(chan struct{})}
}

func (bs *blockingSink) Emit(entry *core.Entry) {
	<-bs.release
	bs.mu.Lock()
	bs.seen = append(bs.seen, entry.Message)
	bs.mu.Unlock()
}

func (bs *blockingSink) Close() error { return nil }

func (bs *blockingSink) messages() []string {
	bs.mu.Lock()
	defer bs.mu.Unlock()
	out := make([]string, len(bs.seen))
	copy(out, bs.seen)
	return out
}

func testEntry(message string) *core.Entry {
	return &core.Entry{
		Timestamp: time.Now(),
		Level:     core.InfoLevel,
		Message:   message,
		Format:    core.FormatLevel,
	}
}

func TestAsyncSinkDelivery(t *testing.T) {
	memory := NewMemorySink()
	async := NewAsyncSink(memory, AsyncOptions{BufferSize: 16})

	for i := 0; i < 10; i++ {
		async.Emit(testEntry("entry"))
	}

	if err := async.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if memory.Count() != 10 {
		t.Errorf("Expected 10 entries delivered, got %d", memory.Count())
	}
	if async.Processed() != 10 {
		t.Errorf("Expected 10 processed, got %d", async.Processed())
	}
	if async.Dropped() != 0 {
		t.Errorf("Expected 0 dropped, got %d", async.Dropped())
	}
}

func TestAsyncSinkConcurrentEmit(t *testing.T) {
	memory := NewMemorySink()
	async := NewAsyncSink(memory, AsyncOptions{
		BufferSize:       8,
		OverflowStrategy: OverflowBlock,
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				async.Emit(testEntry("entry"))
			}
		}()
	}
	wg.Wait()

	if err := async.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if memory.Count() != 1000 {
		t.Errorf("Expected 1000 entries delivered, got %d", memory.Count())
	}
}

func TestAsyncSinkOverflowDrop(t *testing.T) {
	blocking := newBlockingSink()
	async := NewAsyncSink(blocking, AsyncOptions{
		BufferSize:       1,
		OverflowStrategy: OverflowDrop,
		ShutdownTimeout:  time.Second,
	})

	async.Emit(testEntry("first"))
	async.Emit(testEntry("second"))
	async.Emit(testEntry("third"))

	if async.Dropped() == 0 {
		t.Error("Expected at least one entry dropped")
	}

	close(blocking.release)
	if err := async.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if total := async.Processed() + async.Dropped(); total != 3 {
		t.Errorf("Expected processed+dropped == 3, got %d", total)
	}
}

func TestAsyncSinkOverflowDropOldest(t *testing.T) {
	blocking := newBlockingSink()
	async := NewAsyncSink(blocking, AsyncOptions{
		BufferSize:       1,
		OverflowStrategy: OverflowDropOldest,
		ShutdownTimeout:  time.Second,
	})

	// Let the worker pick up the first entry and block inside Emit,
	// leaving the buffer empty.
	async.Emit(testEntry("first"))
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := async.WaitForEmpty(ctx); err != nil {
		t.Fatalf("WaitForEmpty() error = %v", err)
	}

	async.Emit(testEntry("second"))
	async.Emit(testEntry("third")) // displaces "second"

	close(blocking.release)
	if err := async.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	seen := blocking.messages()
	if len(seen) != 2 || seen[0] != "first" || seen[1] != "third" {
		t.Errorf("Expected [first third] delivered, got %v", seen)
	}
	if async.Dropped() != 1 {
		t.Errorf("Expected 1 dropped, got %d", async.Dropped())
	}
}

func TestAsyncSinkCloseTimeout(t *testing.T) {
	blocking := newBlockingSink()
	async := NewAsyncSink(blocking, AsyncOptions{
		BufferSize:      1,
		ShutdownTimeout: 50 * time.Millisecond,
	})

	async.Emit(testEntry("stuck"))

	if err := async.Close(); err == nil {
		t.Error("Expected Close to report timeout while sink is stuck")
	}

	// Unblock the worker so it does not outlive the test.
	close(blocking.release)
}

func TestAsyncSinkPanicRecovery(t *testing.T) {
	var errs []error
	var mu sync.Mutex

	panicking := panicSink{}
	async := NewAsyncSink(panicking, AsyncOptions{
		BufferSize: 4,
		OnError: func(err error) {
			mu.Lock()
			errs = append(errs, err)
			mu.Unlock()
		},
	})

	async.Emit(testEntry("boom"))
	async.Emit(testEntry("boom"))

	if err := async.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(errs) != 2 {
		t.Errorf("Expected 2 errors reported, got %d", len(errs))
	}
}

type panicSink struct{}

func (panicSink) Emit(*core.Entry) { panic("sink failure") }
func (panicSink) Close() error     { return nil }
