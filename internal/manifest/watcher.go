package manifest

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/glot-run/glotctl/pkg/log"
)

// Watcher monitors one manifest file and invokes a callback after
// changes settle.
type Watcher struct {
	mu sync.Mutex

	path     string
	debounce time.Duration
	logger   log.Logger
	onChange func(ctx context.Context)

	timer *time.Timer
}

// NewWatcher creates a watcher for the manifest at path. The callback
// runs after writes have been quiet for the debounce delay.
func NewWatcher(path string, debounce time.Duration, logger log.Logger, onChange func(ctx context.Context)) *Watcher {
	if debounce <= 0 {
		debounce = 100 * time.Millisecond
	}
	return &Watcher{
		path:     path,
		debounce: debounce,
		logger:   logger,
		onChange: onChange,
	}
}

// Watch blocks until ctx is cancelled, invoking the callback whenever
// the manifest is written or recreated. The parent directory is
// watched so editors that replace the file are still seen.
func (w *Watcher) Watch(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	base := filepath.Base(w.path)
	for {
		select {
		case <-ctx.Done():
			w.stopTimer()
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.schedule(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("manifest watcher error", log.Err(err))
		}
	}
}

func (w *Watcher) schedule(ctx context.Context) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.onChange(ctx)
	})
}

func (w *Watcher) stopTimer() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
}
