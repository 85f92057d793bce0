package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/vecmath/engine/core"
)

type OnReload func(cfg *Config)

// Watcher reloads a config file whenever it is created or written and hands
// every successfully parsed result to the OnReload callback. Files that fail
// to parse are logged and skipped, so the previous config stays in effect.
type Watcher struct {
	path     string
	onReload OnReload

	mutex    sync.Mutex
	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
}

func NewWatcher(path string, onReload OnReload) (*Watcher, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Editors replace files instead of writing them in place, so the directory
	// is watched rather than the file itself.
	if err := fsWatch.Add(filepath.Dir(abs)); err != nil {
		fsWatch.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	return &Watcher{
		path:     abs,
		onReload: onReload,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}, nil
}

func (w *Watcher) Path() string {
	return w.path
}

// Start processes file events in a new goroutine until ctx is cancelled or
// the watcher is closed.
func (w *Watcher) Start(ctx context.Context) {
	go w.start(ctx)
}

func (w *Watcher) start(ctx context.Context) {
	for {
		select {

		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != w.path {
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				w.reload()
			}

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("config watcher: %s", err.Error())

		case <-ctx.Done():
			return

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		core.LogWarn("config not reloaded: %s", err.Error())
		return
	}
	core.LogDebug("config reloaded from %s", w.path)
	if w.onReload != nil {
		w.onReload(cfg)
	}
}

func (w *Watcher) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.isClosed {
		return core.ErrWatcherClosed
	}
	w.isClosed = true
	close(w.done)
	return w.fsnotify.Close()
}
