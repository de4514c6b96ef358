package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watches the wallpaper directory so externally added or removed files show
// up without a manual rescan. Events are debounced and filtered through the
// same extension allow-list the scanner uses.
type dirWatcher struct {
	fsWatcher *fsnotify.Watcher
	stop      chan struct{}
}

func watchWallpaperDir(dir string, debounce time.Duration, onChange func()) (*dirWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &dirWatcher{
		fsWatcher: fsWatcher,
		stop:      make(chan struct{}),
	}
	go w.loop(debounce, onChange)
	return w, nil
}

func (w *dirWatcher) loop(debounce time.Duration, onChange func()) {
	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !matchesWallpaperPattern(filepath.Base(event.Name)) {
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)
			pending = true
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("Watcher error: %v", err)
		case <-timer.C:
			if pending {
				pending = false
				onChange()
			}
		case <-w.stop:
			return
		}
	}
}

func (w *dirWatcher) Close() {
	close(w.stop)
	w.fsWatcher.Close()
}
