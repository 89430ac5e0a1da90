package watcher

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IgnoreChecker is used by the watcher to check if a path should be ignored.
type IgnoreChecker interface {
	ShouldIgnoreDir(absolutePath string) bool
	ShouldIgnore(absolutePath string) bool
}

// Watcher observes a version-snapshot root recursively and signals when its
// contents change, so the report can be regenerated.
type Watcher struct {
	fsWatcher     *fsnotify.Watcher
	trigger       *Trigger
	ignoreChecker IgnoreChecker
	rootDir       string
	skipPaths     map[string]bool
	logger        *slog.Logger
}

// NewWatcher creates a recursive watcher on the given root directory.
// It registers all non-ignored subdirectories for watching.
// Paths in skipPaths never poke the trigger; the report's own output and log
// files live under the root, and reacting to them would regenerate forever.
func NewWatcher(rootDir string, ignoreChecker IgnoreChecker, skipPaths []string, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	skip := make(map[string]bool, len(skipPaths))
	for _, path := range skipPaths {
		if path == "" {
			continue
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		skip[filepath.Clean(path)] = true
	}

	w := &Watcher{
		fsWatcher:     fsWatcher,
		trigger:       NewTrigger(500 * time.Millisecond),
		ignoreChecker: ignoreChecker,
		rootDir:       rootDir,
		skipPaths:     skip,
		logger:        logger,
	}

	// Walk directory tree and add all non-ignored directories to the watcher
	err = filepath.WalkDir(rootDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil // Skip entries that can't be read
		}
		if !d.IsDir() {
			return nil
		}
		if path != rootDir && ignoreChecker.ShouldIgnoreDir(path) {
			return filepath.SkipDir
		}
		if watchErr := fsWatcher.Add(path); watchErr != nil {
			w.logger.Warn("failed to watch directory", "path", path, "error", watchErr)
		}
		return nil
	})
	if err != nil {
		fsWatcher.Close()
		return nil, err
	}

	return w, nil
}

// Changes returns the channel that signals coalesced tree changes.
func (w *Watcher) Changes() <-chan struct{} {
	return w.trigger.Output()
}

// Start begins listening for file system events. Call this in a goroutine.
// It runs until the watcher is closed.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher error", "error", err)
		}
	}
}

// handleEvent folds a single fsnotify event into the rerun trigger.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	if w.isSkipped(path) {
		return
	}

	// If a new directory was created, start watching it
	if event.Has(fsnotify.Create) {
		info, err := os.Stat(path)
		if err == nil && info.IsDir() {
			if !w.ignoreChecker.ShouldIgnoreDir(path) {
				if err := w.fsWatcher.Add(path); err != nil {
					w.logger.Warn("failed to watch new directory", "path", path, "error", err)
				}
				// A new version directory is itself a tree change.
				w.trigger.Poke()
			}
			return
		}
	}

	if w.ignoreChecker.ShouldIgnore(path) {
		return
	}
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.trigger.Poke()
}

// isSkipped reports whether path is one of the configured artifact paths.
func (w *Watcher) isSkipped(path string) bool {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return w.skipPaths[filepath.Clean(path)]
}

// Close stops the watcher and releases resources.
func (w *Watcher) Close() error {
	return w.fsWatcher.Close()
}
