package configuration

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/willibrandon/dlog"
	"github.com/willibrandon/dlog/selflog"
)

// Watcher reloads a configuration file whenever it changes and reapplies
// its level selection to a registry. This enables live level control where
// the file acts as the source of truth: edit the file, and running domains
// pick up the new levels without a restart.
//
// Only the level selection fields and domain list are reapplied on change.
// Sinks are fixed at build time; changing WriteTo requires a rebuild.
type Watcher struct {
	path     string
	registry *dlog.Registry
	options  WatchOptions

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// WatchOptions configures a configuration file watcher.
type WatchOptions struct {
	// Debounce is how long to wait after a change before reloading, so a
	// burst of writes from an editor or an atomic save produces a single
	// reload. Default: 200 milliseconds.
	Debounce time.Duration

	// OnError is called when loading or applying the file fails.
	// Default: no-op
	OnError func(error)

	// OnApply is called after a configuration has been applied.
	// Default: no-op
	OnApply func(*Configuration)

	// SkipInitialLoad skips the load-and-apply normally performed before
	// watching starts.
	SkipInitialLoad bool
}

// Watch starts watching path and applying its level selection to the
// registry. Unless SkipInitialLoad is set, the file is loaded once before
// watching begins; a failure there is reported through OnError rather than
// returned, so a watcher can be started before its file first exists.
func Watch(path string, registry *dlog.Registry, options WatchOptions) (*Watcher, error) {
	// Apply defaults
	if options.Debounce <= 0 {
		options.Debounce = 200 * time.Millisecond
	}
	if options.OnError == nil {
		options.OnError = func(error) {} // no-op
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	// Watch the directory rather than the file itself: editors and atomic
	// saves replace the file, which would drop a watch on the file's inode.
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := &Watcher{
		path:     path,
		registry: registry,
		options:  options,
		watcher:  fw,
		ctx:      ctx,
		cancel:   cancel,
	}

	if !options.SkipInitialLoad {
		if err := w.Reload(); err != nil {
			options.OnError(err)
		}
	}

	// Start the background reload loop
	w.wg.Add(1)
	go w.watchLoop()

	return w, nil
}

// Reload immediately loads the file and applies its level selection to the
// registry. This is also useful for forcing synchronization without waiting
// for a file event.
func (w *Watcher) Reload() error {
	config, err := LoadFromFile(w.path)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	for _, name := range config.Dlog.Domains {
		w.registry.Domain(name)
	}
	config.Dlog.Args().Apply(w.registry)

	if w.options.OnApply != nil {
		w.options.OnApply(config)
	}

	return nil
}

// watchLoop consumes file events in a background goroutine, debouncing
// bursts into single reloads.
func (w *Watcher) watchLoop() {
	defer w.wg.Done()

	base := filepath.Base(w.path)

	var debounce *time.Timer
	var debounceC <-chan time.Time

	for {
		select {
		case <-w.ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(w.options.Debounce)
				debounceC = debounce.C
			} else {
				if !debounce.Stop() {
					select {
					case <-debounce.C:
					default:
					}
				}
				debounce.Reset(w.options.Debounce)
			}

		case <-debounceC:
			debounce = nil
			debounceC = nil
			if err := w.Reload(); err != nil {
				w.options.OnError(err)
				if selflog.IsEnabled() {
					selflog.Printf("[configuration] reload failed: %v", err)
				}
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.options.OnError(err)
		}
	}
}

// Path returns the watched file path.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for the background loop to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}
