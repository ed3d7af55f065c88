package metadata

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/dshills/valuekit/logging"
	"github.com/dshills/valuekit/observe"
)

// Watcher follows a descriptor file on disk and publishes each successful
// reload to its subscribers. Parse failures are logged and skipped; the
// last good descriptor remains current.
type Watcher struct {
	mu      sync.RWMutex
	path    string
	watcher *fsnotify.Watcher
	emitter observe.Emitter[Descriptor]
	current Descriptor
	log     *logging.Logger
	closed  bool
	done    chan struct{}
	wg      sync.WaitGroup
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithLogger sets the watcher's logger. Defaults to the package-wide
// logger.
func WithLogger(l *logging.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWatcher loads the descriptor at path and starts watching its directory
// for changes to the file.
func NewWatcher(path string, opts ...WatcherOption) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	initial, err := Load(absPath)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}

	// Watch the directory, not the file: editors commonly replace files by
	// rename, which drops a direct file watch.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:    absPath,
		watcher: fsw,
		current: *initial,
		log:     logging.Default().WithComponent("metadata"),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.wg.Add(1)
	go w.loop()

	return w, nil
}

// Current returns the most recently loaded descriptor.
func (w *Watcher) Current() Descriptor {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnReload registers a listener for descriptor reloads. The listener
// receives the previous and new descriptor.
func (w *Watcher) OnReload(fn observe.Listener[Descriptor]) *observe.Subscription {
	return w.emitter.Subscribe(fn)
}

// Close stops the watcher. It is safe to call Close multiple times.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

// loop processes file system events until Close.
func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isDescriptorEvent(event) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watch error: %v", err)
		}
	}
}

// isDescriptorEvent reports whether the event concerns the watched file.
func (w *Watcher) isDescriptorEvent(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

// reload re-reads the descriptor and notifies subscribers on success.
func (w *Watcher) reload() {
	next, err := Load(w.path)
	if err != nil {
		w.log.Warn("reload skipped: %v", err)
		return
	}

	w.mu.Lock()
	prev := w.current
	w.current = *next
	w.mu.Unlock()

	w.log.Debug("descriptor reloaded: %s %s", next.Name, next.Version)
	w.emitter.Notify(prev, *next)
}
