package config

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	perrors "github.com/Sefyu24/Componentcn/internal/errors"
	"github.com/Sefyu24/Componentcn/internal/logger"
)

// DefaultWatchDebounce collapses the burst of events an editor save produces.
const DefaultWatchDebounce = 250 * time.Millisecond

// Watcher reloads the config file whenever it changes on disk and publishes
// each successfully parsed version on Changes. Files that fail to parse or
// validate are logged and skipped; the previous config stays in effect.
type Watcher struct {
	path     string
	debounce time.Duration
	fs       *fsnotify.Watcher
	changes  chan *Config
	stop     chan struct{}
	done     chan struct{}
	once     sync.Once
}

// Watch starts watching path. The parent directory is watched rather than
// the file, since editors usually save by writing a new file and renaming it
// over the old one. The directory is created if needed.
func Watch(path string, debounce time.Duration) (*Watcher, error) {
	const op = perrors.Op("config.Watch")
	if debounce <= 0 {
		debounce = DefaultWatchDebounce
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, perrors.E(op, perrors.KindIO, "create "+dir, err)
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, perrors.E(op, perrors.KindUnsupported, err)
	}
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, perrors.E(op, perrors.KindIO, "watch "+dir, err)
	}

	w := &Watcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		fs:       fs,
		changes:  make(chan *Config, 1),
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	logger.Debug("config: watching %s", w.path)
	return w, nil
}

// Changes delivers reloaded configs. It is closed by Close.
func (w *Watcher) Changes() <-chan *Config {
	return w.changes
}

// Close stops the watcher and waits for its goroutine. Safe to call twice.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.stop)
		<-w.done
		err = w.fs.Close()
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-w.stop:
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(w.debounce)

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			logger.Warn("config: watch error: %v", err)

		case <-timer.C:
			if _, err := os.Stat(w.path); err != nil {
				// Renamed away and not yet replaced; the Create will follow.
				continue
			}
			cfg, err := LoadFrom(w.path)
			if err != nil {
				logger.Warn("config: ignoring edit: %v", err)
				continue
			}
			// Keep only the newest version if the reader is behind.
			select {
			case <-w.changes:
			default:
			}
			select {
			case w.changes <- cfg:
			case <-w.stop:
				return
			}
		}
	}
}
