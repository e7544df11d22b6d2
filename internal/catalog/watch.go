package catalog

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
	"github.com/janekbaraniewski/priceanatomy/internal/core"
)

// DefaultDebounce coalesces the burst of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk.
type Watcher struct {
	path     string
	debounce time.Duration
	logger   *log.Logger
	watcher  *fsnotify.Watcher

	onReload func(*core.Catalog)
	onError  func(error)

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher prepares a watcher for path. onReload receives every catalog
// that loads successfully; onError receives load failures, after which the
// previous catalog stays in effect.
func NewWatcher(path string, logger *log.Logger, onReload func(*core.Catalog), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: resolving %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("catalog: creating watcher: %w", err)
	}
	// Watch the directory: editors often replace the file instead of writing it.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("catalog: watching %s: %w", filepath.Dir(abs), err)
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		logger:   logger,
		watcher:  fw,
		onReload: onReload,
		onError:  onError,
	}, nil
}

// Run processes events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) {
	defer w.watcher.Close()
	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.schedule()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", "err", err)
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	cat, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("catalog reload failed, keeping previous", "path", w.path, "err", err)
		if w.onError != nil {
			w.onError(err)
		}
		return
	}
	w.logger.Info("catalog reloaded", "path", w.path, "items", cat.Len())
	if w.onReload != nil {
		w.onReload(cat)
	}
}
