package main

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ConfigReload is a re-read of the config file. Err is set when the new file was
// rejected, in which case Config holds the defaults and should not be applied.
type ConfigReload struct {
	Config Config
	Err    error
}

// ConfigWatcher re-reads a config file whenever it changes on disk. The directory is
// watched rather than the file so that editors which save by rename keep working.
type ConfigWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	Reloads chan ConfigReload
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

func NewConfigWatcher(path string) (*ConfigWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &ConfigWatcher{
		path:    abs,
		watcher: w,
		Reloads: make(chan ConfigReload, 4),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *ConfigWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

// run reloads once the file has been quiet for ConfigDebounce, so a save that
// arrives as several writes is read only after the last of them.
func (w *ConfigWatcher) run() {
	defer close(w.done)

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			debounce.Reset(ConfigDebounce * time.Millisecond)
		case <-debounce.C:
			cfg, err := LoadConfig(w.path)
			select {
			case w.Reloads <- ConfigReload{Config: cfg, Err: err}:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
