// Package watcher provides live reload for the configuration file.
//
// File change notifications come from fsnotify on the file's parent
// directory (editors typically replace config files rather than write
// them in place), filtered to the watched name and debounced so a
// save producing several filesystem events triggers one reload.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler is called after the watched file changes, with the absolute
// path of the file.
type Handler func(path string)

// Watcher monitors one configuration file.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	handler  Handler
	debounce time.Duration

	mu    sync.Mutex
	timer *time.Timer

	done chan struct{}
	wg   sync.WaitGroup
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period collapsed into one reload.
// The default is 250ms.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		w.debounce = d
	}
}

// New starts watching path and calls handler after each change.
func New(path string, handler Handler, opts ...Option) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	w := &Watcher{
		fw:       fw,
		path:     abs,
		handler:  handler,
		debounce: 250 * time.Millisecond,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. Pending debounced reloads are dropped; a
// handler call already in flight completes before Close returns.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.fw.Close()
	w.mu.Lock()
	if w.timer != nil {
		if w.timer.Stop() {
			w.wg.Done()
		}
		w.timer = nil
	}
	w.mu.Unlock()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; the next event still fires.
		case <-w.done:
			return
		}
	}
}

// schedule arms (or re-arms) the debounce timer. Each armed timer
// holds a WaitGroup slot until its callback runs or it is stopped, so
// Close can wait out an in-flight handler.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil && w.timer.Stop() {
		w.wg.Done()
	}
	w.wg.Add(1)
	w.timer = time.AfterFunc(w.debounce, func() {
		defer w.wg.Done()
		select {
		case <-w.done:
			return
		default:
		}
		w.handler(w.path)
	})
}
