package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

var (
	ErrFileRemoved    = errors.New("watched file was removed")
	ErrAlreadyStarted = errors.New("watcher already started")
)

// Option configures a Watcher
type Option func(*Watcher)

// WithDebounceDuration sets the debounce duration
func WithDebounceDuration(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounceDuration = d
	}
}

// WithOnError sets the callback invoked on watch errors
func WithOnError(fn func(error)) Option {
	return func(w *Watcher) {
		w.onError = fn
	}
}

// Watcher watches one file. The directory is watched so that editors
// replacing the file atomically are seen too.
type Watcher struct {
	path             string
	debounceDuration time.Duration
	onError          func(error)

	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	cancel    context.CancelFunc
	started   bool
	mu        sync.Mutex
	changeCh  chan struct{}
}

// New creates a watcher for path
func New(path string, opts ...Option) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	w := &Watcher{
		path:             absPath,
		debounceDuration: DefaultDebounceDuration,
		onError:          func(error) {},
		changeCh:         make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.debouncer = NewDebouncer(w.debounceDuration)
	return w, nil
}

// Start begins watching
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return ErrAlreadyStarted
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w.fsWatcher = fsw
	w.cancel = cancel
	w.started = true
	go w.loop(ctx, fsw.Events, fsw.Errors)
	return nil
}

// Stop stops watching. The Changed channel stays open.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.started {
		return
	}
	w.cancel()
	w.fsWatcher.Close()
	w.fsWatcher = nil
	w.debouncer.Cancel()
	w.started = false
}

// Changed receives once per debounced burst of changes
func (w *Watcher) Changed() <-chan struct{} {
	return w.changeCh
}

// Path returns the watched file path
func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) {
	target := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != target {
				continue
			}
			switch {
			case event.Op&fsnotify.Remove != 0:
				w.onError(ErrFileRemoved)
			case event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0:
				w.debouncer.Trigger(w.notify)
			}
		case err, ok := <-errs:
			if !ok {
				return
			}
			w.onError(err)
		}
	}
}

func (w *Watcher) notify() {
	w.mu.Lock()
	started := w.started
	w.mu.Unlock()
	if !started {
		return
	}
	select {
	case w.changeCh <- struct{}{}:
	default:
	}
}
