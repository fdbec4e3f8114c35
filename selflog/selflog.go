// Package selflog provides internal diagnostic logging for dlog.
//
// The logging facility cannot report its own failures through itself, so
// sinks and configuration code route them here instead of discarding them.
// Enable selflog when logs are not appearing where expected or a
// configuration file is not taking effect.
//
// # Usage
//
// Write diagnostics to stderr:
//
//	selflog.Enable(os.Stderr)
//	defer selflog.Disable()
//
// Route diagnostics into another system:
//
//	selflog.EnableFunc(func(msg string) {
//	    othersystem.Warn("dlog: " + msg)
//	})
//
// # Format
//
// Messages carry an RFC 3339 UTC timestamp and a bracketed component tag:
//
//	2025-08-24T15:30:45Z [console] write failed: broken pipe
//
// # Environment variable
//
// Setting DLOG_SELFLOG enables selflog at startup: "stderr", "stdout", or a
// file path (opened in append mode).
package selflog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// output is the active destination. A nil pointer means disabled.
var output atomic.Pointer[func(string)]

// Enable activates self-logging to the given writer. The writer should be
// safe for concurrent use or wrapped with Sync.
func Enable(w io.Writer) {
	if w == nil {
		return
	}
	EnableFunc(func(line string) {
		fmt.Fprintln(w, line)
	})
}

// EnableFunc activates self-logging through a callback, which receives each
// formatted line.
func EnableFunc(fn func(string)) {
	if fn == nil {
		return
	}
	output.Store(&fn)
}

// Disable deactivates self-logging.
func Disable() {
	output.Store(nil)
}

// IsEnabled reports whether selflog is active. Check it before building
// expensive diagnostics:
//
//	if selflog.IsEnabled() {
//	    selflog.Printf("[file] dropped %d writes", n)
//	}
func IsEnabled() bool {
	return output.Load() != nil
}

// Printf logs one internal diagnostic message. By convention the format
// string starts with the component in square brackets, e.g.
// "[config] reload failed: %v".
func Printf(format string, args ...any) {
	fn := output.Load()
	if fn == nil {
		return
	}
	line := time.Now().UTC().Format(time.RFC3339) + " " + fmt.Sprintf(format, args...)
	(*fn)(line)
}

// syncWriter serializes writes to a wrapped writer.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(p)
}

// Sync wraps a writer so it can be shared with Enable safely. Use it for
// files and other writers without their own locking.
func Sync(w io.Writer) io.Writer {
	return &syncWriter{w: w}
}

func init() {
	switch dest := os.Getenv("DLOG_SELFLOG"); dest {
	case "":
	case "stderr":
		Enable(os.Stderr)
	case "stdout":
		Enable(os.Stdout)
	default:
		if f, err := os.OpenFile(dest, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
			Enable(Sync(f))
		}
	}
}
