package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	m "github.com/mouse-blink/routelint/internal/model"
)

// DefaultDebounce is the quiet period after the last event before a change
// is reported.
const DefaultDebounce = 300 * time.Millisecond

// Watcher reports filesystem changes below a root.
type Watcher interface {
	// Watch blocks until ctx is done, calling onChange once per burst of
	// events. onChange runs on the watching goroutine, so calls never overlap.
	Watch(ctx context.Context, root m.Path, onChange func()) error
}

// FSWatcher is an fsnotify-backed Watcher.
type FSWatcher struct {
	skipDirs map[string]struct{}
	debounce time.Duration
	log      *zap.Logger
}

// NewFSWatcher creates a watcher ignoring directories named in skipDirs.
// A non-positive debounce selects DefaultDebounce.
func NewFSWatcher(skipDirs []string, debounce time.Duration, log *zap.Logger) *FSWatcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	if log == nil {
		log = zap.NewNop()
	}

	skip := make(map[string]struct{}, len(skipDirs))
	for _, dir := range skipDirs {
		skip[dir] = struct{}{}
	}

	return &FSWatcher{skipDirs: skip, debounce: debounce, log: log}
}

// Watch implements Watcher.
func (w *FSWatcher) Watch(ctx context.Context, root m.Path, onChange func()) error {
	rootStr := filepath.Clean(string(root))
	if _, err := os.Stat(rootStr); err != nil {
		return fmt.Errorf("watch %s: %w", rootStr, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch init: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	if err := w.addRecursive(watcher, rootStr); err != nil {
		return fmt.Errorf("watch %s: %w", rootStr, err)
	}

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if ev.Op == fsnotify.Chmod || w.skipped(rootStr, ev.Name) {
				continue
			}

			if _, skip := w.skipDirs[filepath.Base(ev.Name)]; skip {
				continue
			}

			if ev.Has(fsnotify.Create) {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := w.addRecursive(watcher, ev.Name); addErr != nil {
						w.log.Warn("watch new directory failed", zap.String("dir", ev.Name), zap.Error(addErr))
					}
				}
			}

			w.log.Debug("change detected", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))

			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}

			timerC = timer.C

		case <-timerC:
			timerC = nil

			onChange()

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			w.log.Warn("watch error", zap.Error(werr))
		}
	}
}

func (w *FSWatcher) addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			w.log.Warn("skip unwatchable path", zap.String("path", path), zap.Error(err))
			return nil
		}

		if !info.IsDir() {
			return nil
		}

		if _, ok := w.skipDirs[info.Name()]; ok && path != dir {
			return filepath.SkipDir
		}

		return watcher.Add(path)
	})
}

// skipped reports whether path lies inside an excluded directory below root.
func (w *FSWatcher) skipped(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	for _, part := range parts[:len(parts)-1] {
		if _, ok := w.skipDirs[part]; ok {
			return true
		}
	}

	return false
}
