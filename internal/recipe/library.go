package recipe

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"souschef/internal/errors"
	"souschef/internal/logging"
)

// Library holds the recipes loaded from a directory of YAML files. It can
// optionally watch the directory and reload on changes, so edits made while
// browsing show up without restarting.
//
// Thread Safety: all public methods are safe for concurrent use.
type Library struct {
	dir    string
	logger *logging.Logger

	mu      sync.RWMutex
	recipes map[string]*Recipe // keyed by file basename without extension

	watcher  *fsnotify.Watcher
	doneChan chan struct{}
	onReload func()
}

// NewLibrary creates a Library rooted at dir. The directory is not read
// until Reload or Watch is called.
func NewLibrary(dir string, logger *logging.Logger) *Library {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Library{
		dir:     dir,
		logger:  logger,
		recipes: make(map[string]*Recipe),
	}
}

// Reload scans the library directory and loads every *.yaml and *.yml file.
// Files that fail to parse are skipped with a warning; one bad file must not
// hide the rest of the library.
func (l *Library) Reload() error {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return errors.NewRecipeError("failed to read recipe directory", err).WithPath(l.dir)
	}

	loaded := make(map[string]*Recipe)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		path := filepath.Join(l.dir, entry.Name())
		r, err := Load(path)
		if err != nil {
			l.logger.Warn("skipping unreadable recipe", "path", path, "error", err)
			continue
		}

		key := strings.TrimSuffix(entry.Name(), filepath.Ext(entry.Name()))
		loaded[key] = r
	}

	l.mu.Lock()
	l.recipes = loaded
	l.mu.Unlock()

	l.logger.Debug("recipe library reloaded", "dir", l.dir, "count", len(loaded))
	return nil
}

// Get returns the recipe stored under the given key (file basename without
// extension).
func (l *Library) Get(key string) (*Recipe, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r, ok := l.recipes[key]
	if !ok {
		return nil, errors.NewNotFoundError("recipe", key)
	}
	return r, nil
}

// Keys returns the sorted list of recipe keys.
func (l *Library) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	keys := make([]string, 0, len(l.recipes))
	for k := range l.recipes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of loaded recipes.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.recipes)
}

// Watch starts watching the library directory and reloads on any change.
// The optional onReload callback fires after each successful reload.
// Watch is a no-op if already watching.
func (l *Library) Watch(onReload func()) error {
	l.mu.Lock()
	if l.watcher != nil {
		l.mu.Unlock()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		l.mu.Unlock()
		return errors.Wrap(err, "failed to create recipe watcher")
	}
	if err := watcher.Add(l.dir); err != nil {
		_ = watcher.Close()
		l.mu.Unlock()
		return errors.Wrapf(err, "failed to watch %s", l.dir)
	}

	doneChan := make(chan struct{})
	l.watcher = watcher
	l.doneChan = doneChan
	l.onReload = onReload
	l.mu.Unlock()

	go l.watchLoop(watcher, doneChan)
	return nil
}

// watchLoop handles filesystem events until the watcher is closed. The
// watcher and done channel are passed in so the loop never touches the
// fields Close nils out.
func (l *Library) watchLoop(watcher *fsnotify.Watcher, doneChan chan struct{}) {
	for {
		select {
		case <-doneChan:
			return
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Write) &&
				!ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if err := l.Reload(); err != nil {
				l.logger.Warn("recipe reload failed", "error", err)
				continue
			}
			l.mu.RLock()
			callback := l.onReload
			l.mu.RUnlock()
			if callback != nil {
				callback()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			l.logger.Warn("recipe watcher error", "error", err)
		}
	}
}

// Close stops the directory watcher, if running. Idempotent.
func (l *Library) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.watcher == nil {
		return nil
	}

	close(l.doneChan)
	err := l.watcher.Close()
	l.watcher = nil
	return err
}
