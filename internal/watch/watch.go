// Package watch re-runs a scan whenever the configuration tree changes.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/claude-list/claude-list/internal/component"
)

// DefaultDebounce is how long the tree must stay quiet before a rescan.
const DefaultDebounce = 300 * time.Millisecond

// tick is how often pending changes are checked against the debounce
// window.
const tick = 50 * time.Millisecond

// componentDirs are watched recursively. The root itself is watched
// without recursion, which covers the registry files at the top level.
var componentDirs = []string{"plugins", "skills", "mcp-servers", "hooks", "agents", "commands"}

// Watcher watches a configuration root.
type Watcher struct {
	root     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	log      *zap.Logger
	watched  map[string]bool
}

// Options configures a Watcher.
type Options struct {
	Debounce time.Duration // DefaultDebounce when zero
	Log      *zap.Logger
}

// New starts watching root.
func New(root string, opts Options) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	w := &Watcher{
		root:     root,
		watcher:  fw,
		debounce: opts.Debounce,
		log:      component.Logger(opts.Log),
		watched:  make(map[string]bool),
	}
	if w.debounce <= 0 {
		w.debounce = DefaultDebounce
	}

	if err := w.add(root); err != nil {
		fw.Close()
		return nil, err
	}
	for _, dir := range componentDirs {
		w.addTree(filepath.Join(root, dir))
	}
	return w, nil
}

// Watched returns the number of directories being watched.
func (w *Watcher) Watched() int {
	return len(w.watched)
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run calls onChange each time the tree settles after a change, until ctx
// is done. A failing onChange is logged and watching continues.
func (w *Watcher) Run(ctx context.Context, onChange func(context.Context) error) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var (
		pending   bool
		lastEvent time.Time
	)
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.handleEvent(event) {
				continue
			}
			pending = true
			lastEvent = time.Now()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", zap.Error(err))

		case <-ticker.C:
			if !pending || time.Since(lastEvent) < w.debounce {
				continue
			}
			pending = false
			if err := onChange(ctx); err != nil {
				w.log.Warn("rescan failed", zap.Error(err))
			}
		}
	}
}

// handleEvent reports whether event counts as a change. New directories
// inside watched trees are watched too.
func (w *Watcher) handleEvent(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	w.log.Debug("change", zap.String("path", event.Name), zap.String("op", event.Op.String()))

	if event.Op.Has(fsnotify.Create) && w.inComponentDir(event.Name) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			w.addTree(event.Name)
		}
	}
	if event.Op.Has(fsnotify.Remove) || event.Op.Has(fsnotify.Rename) {
		delete(w.watched, event.Name)
	}
	return true
}

// inComponentDir reports whether path is a component directory or lies
// below one.
func (w *Watcher) inComponentDir(path string) bool {
	for _, dir := range componentDirs {
		rel, err := filepath.Rel(filepath.Join(w.root, dir), path)
		if err == nil && !strings.HasPrefix(rel, "..") {
			return true
		}
	}
	return false
}

// addTree watches dir and every directory below it. A missing dir is
// skipped quietly; it is picked up when it appears under the root.
func (w *Watcher) addTree(dir string) {
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() {
			return nil
		}
		if err := w.add(path); err != nil {
			w.log.Debug("directory not watched", zap.String("path", path), zap.Error(err))
		}
		return nil
	})
}

func (w *Watcher) add(dir string) error {
	if w.watched[dir] {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.watched[dir] = true
	return nil
}
