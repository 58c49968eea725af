// Package watch notifies the refresh loop when a file source changes on
// disk, so edits show up immediately instead of waiting out the interval.
package watch

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports modifications to a single file. The parent directory is
// watched rather than the file itself so editors that replace the file
// (write to temp, rename over) keep triggering events.
type Watcher struct {
	fsw    *fsnotify.Watcher
	path   string
	events chan struct{}
}

// New starts watching the file at path.
func New(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:    fsw,
		path:   abs,
		events: make(chan struct{}, 1),
	}
	go w.pump()
	return w, nil
}

// Events delivers one signal per observed change. The channel is closed when
// the watcher shuts down.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

func (w *Watcher) pump() {
	defer close(w.events)
	for {
		select {
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Coalesce bursts: one pending signal is enough.
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
		}
	}
}
