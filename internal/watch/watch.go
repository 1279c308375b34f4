// Package watch reloads a ramp document when its file changes on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/gogpu/colorramp"
)

// DefaultDebounce is the quiet period after the last change before a reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a reload function after a file stops changing.
// Callbacks run on the watcher's goroutine, one at a time.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	debounce time.Duration
	onReload func() error
	onError  func(error)

	stop    chan struct{}
	stopped chan struct{}

	mu      sync.Mutex
	started bool
	closed  bool
}

// New watches path. onReload runs after each burst of writes settles for
// debounce; a non-positive debounce selects DefaultDebounce. onError, which
// may be nil, receives watch errors and reload failures.
//
// The parent directory is watched rather than the file so that editors that
// save by renaming a temporary file are seen.
func New(path string, debounce time.Duration, onReload func() error, onError func(error)) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if err := fs.Add(filepath.Dir(path)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	return &Watcher{
		fs:       fs,
		path:     path,
		debounce: debounce,
		onReload: onReload,
		onError:  onError,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Start runs the watch loop in a new goroutine. Calls after the first, or
// after Stop, do nothing.
func (w *Watcher) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started || w.closed {
		return
	}
	w.started = true
	go w.loop()
}

// Stop ends the watch loop, waits for it to exit and releases the
// underlying watcher. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	started := w.started
	w.mu.Unlock()

	if !started {
		w.fs.Close()
		return
	}
	close(w.stop)
	<-w.stopped
}

// matches reports whether an event concerns the watched file.
func (w *Watcher) matches(ev fsnotify.Event, base, abs string) bool {
	if filepath.Base(ev.Name) != base {
		if evAbs, err := filepath.Abs(ev.Name); err != nil || evAbs != abs {
			return false
		}
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}

func (w *Watcher) loop() {
	defer close(w.stopped)
	defer w.fs.Close()

	abs, _ := filepath.Abs(w.path)
	base := filepath.Base(w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.stop:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.matches(ev, base, abs) {
				continue
			}
			colorramp.Logger().Debug("watch: change", "path", ev.Name, "op", ev.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			timer, fire = nil, nil
			w.reload()

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.fail(fmt.Errorf("watch %s: %w", w.path, err))
		}
	}
}

func (w *Watcher) reload() {
	if w.onReload == nil {
		return
	}
	if err := w.onReload(); err != nil {
		w.fail(fmt.Errorf("reload %s: %w", w.path, err))
		return
	}
	colorramp.Logger().Debug("watch: reloaded", "path", w.path)
}

func (w *Watcher) fail(err error) {
	colorramp.Logger().Warn("watch: error", "err", err)
	if w.onError != nil {
		w.onError(err)
	}
}
