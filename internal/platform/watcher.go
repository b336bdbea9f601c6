package platform

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"go.trai.ch/zerr"
)

// DefaultDebounce coalesces the burst of writes a project save produces.
const DefaultDebounce = 300 * time.Millisecond

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// Roots are the directories whose direct children are project directories.
	Roots []string

	// Marker is the file whose appearance inside a project directory signals
	// that the project is ready.
	Marker string

	// Debounce delays the callback until writes to a project have settled.
	Debounce time.Duration

	// OnProject receives the project directory. It runs on a timer goroutine.
	OnProject func(dir string)
}

// Watcher reports project directories under a set of roots once their marker
// file is written.
type Watcher struct {
	cfg       WatcherConfig
	fsWatcher *fsnotify.Watcher
	roots     map[string]bool
	logger    zerolog.Logger

	mu      sync.Mutex
	pending map[string]*time.Timer
}

// NewWatcher creates the roots if needed and watches them along with every
// existing project directory.
func NewWatcher(cfg WatcherConfig) (*Watcher, error) {
	if cfg.Marker == "" || cfg.OnProject == nil {
		return nil, zerr.New("watcher: marker and callback are required")
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, "watcher: create")
	}

	w := &Watcher{
		cfg:       cfg,
		fsWatcher: fsw,
		roots:     make(map[string]bool),
		logger:    zerolog.Nop(),
		pending:   make(map[string]*time.Timer),
	}

	for _, root := range cfg.Roots {
		root = filepath.Clean(root)
		if err := CreateDirectoryIfNotExists(root); err != nil {
			_ = fsw.Close()
			return nil, zerr.With(zerr.Wrap(err, "watcher: create root"), "root", root)
		}
		if err := fsw.Add(root); err != nil {
			_ = fsw.Close()
			return nil, zerr.With(zerr.Wrap(err, "watcher: add root"), "root", root)
		}
		w.roots[root] = true

		entries, err := os.ReadDir(root)
		if err != nil {
			continue
		}
		for _, e := range entries {
			if e.IsDir() {
				_ = fsw.Add(filepath.Join(root, e.Name()))
			}
		}
	}

	return w, nil
}

// SetLogger sets the logger used for watch errors
func (w *Watcher) SetLogger(logger zerolog.Logger) {
	w.logger = logger
}

// Run processes filesystem events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Msg("file system watch error")
		}
	}
}

// Close stops watching and cancels pending callbacks.
func (w *Watcher) Close() error {
	w.mu.Lock()
	for dir, t := range w.pending {
		t.Stop()
		delete(w.pending, dir)
	}
	w.mu.Unlock()
	return w.fsWatcher.Close()
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	path := filepath.Clean(event.Name)
	parent := filepath.Dir(path)

	// New project directory directly below a root.
	if w.roots[parent] && event.Has(fsnotify.Create) {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			return
		}
		if err := w.fsWatcher.Add(path); err != nil {
			w.logger.Debug().Err(err).Str("dir", path).Msg("cannot watch project directory")
			return
		}
		// The marker may have landed before the watch was in place.
		if _, err := os.Stat(filepath.Join(path, w.cfg.Marker)); err == nil {
			w.schedule(path)
		}
		return
	}

	if filepath.Base(path) == w.cfg.Marker && w.roots[filepath.Dir(parent)] {
		w.schedule(parent)
	}
}

func (w *Watcher) schedule(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.pending[dir]; ok {
		t.Reset(w.cfg.Debounce)
		return
	}
	w.pending[dir] = time.AfterFunc(w.cfg.Debounce, func() {
		w.mu.Lock()
		delete(w.pending, dir)
		w.mu.Unlock()

		w.logger.Debug().Str("dir", dir).Msg("project ready")
		w.cfg.OnProject(dir)
	})
}
