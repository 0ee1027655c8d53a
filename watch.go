package main

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// editors tend to write a file in several steps, changes closer together
// than this fire once.
const watchSettle = 100 * time.Millisecond

type FileWatcher struct {
	watcher *fsnotify.Watcher
	path    string

	mu    sync.Mutex
	timer *time.Timer
	done  chan struct{}
}

// WatchFile calls onChange after path is written, created or replaced. The
// parent directory is watched so that rename-on-save editors are seen.
// onChange runs on its own goroutine.
func WatchFile(path string, onChange func()) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "watch")
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "watch")
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, errors.Wrapf(err, "watch %s", path)
	}
	fw := &FileWatcher{
		watcher: w,
		path:    abs,
		done:    make(chan struct{}),
	}
	go fw.loop(onChange)
	return fw, nil
}

func (fw *FileWatcher) loop(onChange func()) {
	defer close(fw.done)
	for {
		select {
		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			fw.mu.Lock()
			if fw.timer != nil {
				fw.timer.Stop()
			}
			fw.timer = time.AfterFunc(watchSettle, onChange)
			fw.mu.Unlock()
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watch %s: %v", fw.path, err)
		}
	}
}

func (fw *FileWatcher) Close() error {
	err := fw.watcher.Close()
	<-fw.done
	fw.mu.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mu.Unlock()
	return err
}
