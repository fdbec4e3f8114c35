package sinks

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/willibrandon/dlog/core"
	"github.com/willibrandon/dlog/selflog"
)

// FileSink writes log entries to a file. Output is always plain text;
// color codes never reach the file regardless of the entry's format flags.
type FileSink struct {
	path   string
	file   *os.File
	mu     sync.Mutex
	isOpen bool
}

// NewFileSink creates a new file sink appending to the given path.
// Parent directories are created as needed.
func NewFileSink(path string) (*FileSink, error) {
	fs := &FileSink{path: path}

	if err := fs.open(); err != nil {
		return nil, err
	}

	return fs, nil
}

// Emit writes the log entry to the file.
func (fs *FileSink) Emit(entry *core.Entry) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return
	}

	plain := *entry
	plain.Format = plain.Format.Without(core.FormatColor)

	if err := writePlain(fs.file, &plain); err != nil {
		if selflog.IsEnabled() {
			selflog.Printf("[file] write failed: %v (path=%s)", err, fs.path)
		}
	}
}

// Close flushes and closes the file.
func (fs *FileSink) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if !fs.isOpen {
		return nil
	}

	fs.isOpen = false

	if err := fs.file.Sync(); err != nil {
		return fmt.Errorf("failed to sync log file: %w", err)
	}

	if err := fs.file.Close(); err != nil {
		return fmt.Errorf("failed to close log file: %w", err)
	}

	return nil
}

// open creates or opens the log file.
func (fs *FileSink) open() error {
	dir := filepath.Dir(fs.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(fs.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fs.file = file
	fs.isOpen = true

	return nil
}
