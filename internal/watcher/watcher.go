// Package watcher reports debounced changes to stylesheets and palette files.
package watcher

import (
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/themify/internal/collections"
	"bennypowers.dev/themify/internal/log"
)

// Watcher monitors directories and sends the changed paths after each
// quiet period
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	dirs      []string
	match     func(path string) bool
	debounce  time.Duration
	onChange  chan []string
	done      chan struct{}
}

// Config holds watcher configuration options
type Config struct {
	// Dirs are watched non-recursively
	Dirs []string
	// Match selects the paths that trigger a notification
	Match       func(path string) bool
	DebounceDur time.Duration
}

// DefaultConfig watches dirs for any change, with a short debounce
func DefaultConfig(dirs ...string) Config {
	return Config{
		Dirs:        dirs,
		Match:       func(string) bool { return true },
		DebounceDur: 200 * time.Millisecond,
	}
}

// New creates a watcher
func New(cfg Config) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	match := cfg.Match
	if match == nil {
		match = func(string) bool { return true }
	}

	return &Watcher{
		fsWatcher: fsw,
		dirs:      cfg.Dirs,
		match:     match,
		debounce:  cfg.DebounceDur,
		onChange:  make(chan []string, 1),
		done:      make(chan struct{}),
	}, nil
}

// Start begins watching. The returned channel receives the changed paths,
// sorted, once writes have been quiet for the debounce duration.
func (w *Watcher) Start() (<-chan []string, error) {
	for _, dir := range w.dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return nil, fmt.Errorf("watching directory %s: %w", dir, err)
		}
	}

	go w.loop()

	return w.onChange, nil
}

// Stop terminates the watcher and releases resources
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer   *time.Timer
		pending = collections.NewOrderedSet[string]()
	)

	for {
		var fire <-chan time.Time
		if timer != nil {
			fire = timer.C
		}

		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			pending.Add(filepath.Clean(event.Name))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}

		case <-fire:
			timer = nil
			if pending.Len() == 0 {
				continue
			}
			changed := pending.Members()
			slices.Sort(changed)
			pending = collections.NewOrderedSet[string]()

			// drop the batch when the consumer is still busy with the last one
			select {
			case w.onChange <- changed:
			default:
				log.Debug("Dropped change notification for %d files", len(changed))
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Warn("Watcher error: %v", err)

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}
	return w.match(event.Name)
}
