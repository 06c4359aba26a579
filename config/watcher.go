package config

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/philipp01105/topolog/logger"
)

// DefaultDebounce is the quiet period after the last file event before the
// configuration is reloaded.
const DefaultDebounce = 250 * time.Millisecond

var log = logger.Target("topolog/config")

// Watcher watches a configuration file and notifies handlers when it
// changes. The file is loaded fresh on each change.
type Watcher struct {
	path     string
	debounce time.Duration
	loader   func(path string) (Config, error)
	handlers []func(Config)
	onError  func(error)
	mu       sync.RWMutex
	watcher  *fsnotify.Watcher
	ctx      context.Context
	cancel   context.CancelFunc
	done     chan struct{}
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the debounce duration for config changes.
// Default is 250ms.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// WithErrorHandler sets a callback for reload errors.
// If not set, errors are only logged.
func WithErrorHandler(handler func(error)) WatcherOption {
	return func(w *Watcher) {
		w.onError = handler
	}
}

// WithLoader replaces Load as the function reading the file
func WithLoader(loader func(path string) (Config, error)) WatcherOption {
	return func(w *Watcher) {
		w.loader = loader
	}
}

// NewWatcher creates a watcher for path
func NewWatcher(path string, opts ...WatcherOption) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		debounce: DefaultDebounce,
		loader:   Load,
		ctx:      ctx,
		cancel:   cancel,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// OnReload registers a handler to be called with every successfully
// loaded configuration. Returns an unsubscribe function.
func (w *Watcher) OnReload(handler func(Config)) func() {
	w.mu.Lock()
	w.handlers = append(w.handlers, handler)
	idx := len(w.handlers) - 1
	w.mu.Unlock()

	return func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		w.handlers[idx] = nil
	}
}

// Start begins watching the file. The parent directory is watched so the
// file survives being replaced by rename.
func (w *Watcher) Start() error {
	if _, err := os.Stat(w.path); err != nil {
		return errors.Wrapf(err, "watch %s", w.path)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "create watcher")
	}
	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		watcher.Close()
		return errors.Wrapf(err, "watch %s", w.path)
	}
	w.watcher = watcher

	log.Infof("watching %s (debounce %s)", w.path, w.debounce)
	go w.watch()
	return nil
}

// Stop stops watching and waits for the watch loop to exit
func (w *Watcher) Stop() error {
	w.cancel()
	if w.watcher == nil {
		return nil
	}
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) watch() {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time
	target := filepath.Clean(w.path)

	for {
		select {
		case <-w.ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			log.Debugf("watcher for %s stopped", w.path)
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			// A rename-save shows up as Create (or Rename) on the path
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			log.Tracef("%s: %s", event.Name, event.Op)

			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			timerC = timer.C

		case <-timerC:
			timerC = nil
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warnf("watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := w.loader(w.path)
	if err != nil {
		log.Errorf("reload %s: %v", w.path, err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	log.Infof("reloaded %s", w.path)

	w.mu.RLock()
	handlers := make([]func(Config), 0, len(w.handlers))
	for _, h := range w.handlers {
		if h != nil {
			handlers = append(handlers, h)
		}
	}
	w.mu.RUnlock()

	for _, h := range handlers {
		h(cfg)
	}
}
