package shader

import (
	"fmt"
	"path/filepath"
	"slices"
	"sync"

	"github.com/Carmen-Shannon/oxy-gl/engine/logger"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// watcher is the implementation of the Watcher interface.
type watcher struct {
	mu      *sync.Mutex
	root    string
	fs      *fsnotify.Watcher
	files   map[string]string // absolute path -> logical path
	dirs    map[string]bool
	pending map[string]bool
	done    chan struct{}
	wg      sync.WaitGroup
	log     *zap.Logger
}

// Watcher reports shader files that changed on disk. Events are collected on a background
// goroutine; the render thread drains them with Pending and rebuilds programs itself, since
// device calls are only legal on the context thread.
type Watcher interface {
	// Add starts watching shader files given by their logical paths below the watcher root.
	//
	// Parameters:
	//   - paths: logical shader paths
	//
	// Returns:
	//   - error: an error if a containing directory cannot be watched
	Add(paths ...string) error

	// Pending returns the logical paths changed since the previous call, sorted, and clears them.
	//
	// Returns:
	//   - []string: changed paths, nil when nothing changed
	Pending() []string

	// Close stops the background goroutine and releases the OS watch handles.
	//
	// Returns:
	//   - error: an error from closing the OS watcher
	Close() error
}

var _ Watcher = &watcher{}

// NewWatcher creates a watcher for shader files below root.
//
// Parameters:
//   - root: the directory logical shader paths are relative to
//   - l: the logger receiving watch errors, nil for logger.Log
//
// Returns:
//   - Watcher: the running watcher
//   - error: an error if the OS watcher cannot be created
func NewWatcher(root string, l *zap.Logger) (Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create shader watcher: %w", err)
	}
	w := &watcher{
		mu:      &sync.Mutex{},
		root:    root,
		fs:      fw,
		files:   make(map[string]string),
		dirs:    make(map[string]bool),
		pending: make(map[string]bool),
		done:    make(chan struct{}),
		log:     logger.Or(l),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

func (w *watcher) Add(paths ...string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, p := range paths {
		abs, err := filepath.Abs(filepath.Join(w.root, filepath.FromSlash(p)))
		if err != nil {
			return fmt.Errorf("watch %s: %w", p, err)
		}
		// Editors often replace files instead of writing them, so the directory is watched.
		dir := filepath.Dir(abs)
		if !w.dirs[dir] {
			if err := w.fs.Add(dir); err != nil {
				return fmt.Errorf("watch %s: %w", dir, err)
			}
			w.dirs[dir] = true
		}
		w.files[abs] = p
	}
	return nil
}

func (w *watcher) Pending() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.pending) == 0 {
		return nil
	}
	out := make([]string, 0, len(w.pending))
	for p := range w.pending {
		out = append(out, p)
	}
	clear(w.pending)
	slices.Sort(out)
	return out
}

func (w *watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	err := w.fs.Close()
	w.wg.Wait()
	return err
}

func (w *watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.record(event.Name)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("shader watcher error", zap.Error(err))
		}
	}
}

func (w *watcher) record(name string) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if p, ok := w.files[abs]; ok {
		w.pending[p] = true
	}
}
