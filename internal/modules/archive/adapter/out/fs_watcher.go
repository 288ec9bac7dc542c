package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	archiveout "mindspace/internal/modules/archive/port/out"
)

// FSWatcher watches the storage directory and reports writes to files whose
// base name matches one of patterns. Bursts of events inside the debounce
// window collapse into one call.
type FSWatcher struct {
	dir      string
	patterns []string
	debounce time.Duration
	logger   *log.Logger
}

func NewFSWatcher(dir string, patterns []string, debounce time.Duration, logger *log.Logger) *FSWatcher {
	return &FSWatcher{dir: dir, patterns: patterns, debounce: debounce, logger: logger}
}

var _ archiveout.ChangeWatcher = (*FSWatcher)(nil)

func (w *FSWatcher) Watch(ctx context.Context, fn func()) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create watch dir: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create file watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}

	var fire <-chan time.Time
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !w.matches(event.Name) {
				continue
			}
			w.logger.Debug("archive change detected", "file", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			fn()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("archive watcher error", "err", err)
		}
	}
}

func (w *FSWatcher) matches(name string) bool {
	if len(w.patterns) == 0 {
		return true
	}
	base := filepath.Base(name)
	for _, p := range w.patterns {
		if ok, err := doublestar.Match(p, base); err == nil && ok {
			return true
		}
	}
	return false
}
