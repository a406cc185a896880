package loader

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Default timings for Watcher.
const (
	DefaultPollInterval = 500 * time.Millisecond
	DefaultDebounce     = 50 * time.Millisecond
)

// Op is the kind of change reported for a watched file.
type Op string

// File change kinds.
const (
	OpWrite  Op = "write"
	OpCreate Op = "create"
	OpRemove Op = "remove"
)

// Event reports that a watched file changed.
type Event struct {
	Path string
	Op   Op
}

// Watcher reports changes to a fixed set of files.
type Watcher struct {
	paths     []string
	watched   map[string]bool
	interval  time.Duration
	debounce  time.Duration
	forcePoll bool
	logger    *slog.Logger
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithPollInterval sets how often files are checked when polling.
func WithPollInterval(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithDebounce sets how long to wait for a burst of notifications to settle
// before reporting it.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithPolling disables fsnotify and always polls.
func WithPolling() WatchOption {
	return func(w *Watcher) {
		w.forcePoll = true
	}
}

// WithWatchLogger sets the logger for watcher diagnostics.
func WithWatchLogger(logger *slog.Logger) WatchOption {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// NewWatcher creates a watcher for paths. Empty paths are ignored.
func NewWatcher(paths []string, opts ...WatchOption) *Watcher {
	w := &Watcher{
		watched:  make(map[string]bool, len(paths)),
		interval: DefaultPollInterval,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs := absPath(p)
		if !w.watched[abs] {
			w.watched[abs] = true
			w.paths = append(w.paths, abs)
		}
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Paths returns the absolute paths being watched.
func (w *Watcher) Paths() []string {
	out := make([]string, len(w.paths))
	copy(out, w.paths)
	return out
}

// Watch reports changes on the returned channel until ctx is cancelled, at
// which point the channel is closed.
// Uses fsnotify on the files' directories with polling as a fallback.
func (w *Watcher) Watch(ctx context.Context) <-chan Event {
	ch := make(chan Event)

	go func() {
		defer close(ch)

		if w.forcePoll {
			w.watchPolling(ctx, ch)
			return
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			w.logger.Debug("fsnotify unavailable, polling", slog.Any("error", err))
			w.watchPolling(ctx, ch)
			return
		}
		defer watcher.Close()

		// Watch directories: editors often replace files instead of writing them.
		for _, dir := range w.dirs() {
			if err := watcher.Add(dir); err != nil {
				w.logger.Debug("cannot watch directory, polling",
					slog.String("dir", dir),
					slog.Any("error", err))
				w.watchPolling(ctx, ch)
				return
			}
		}

		w.watchNotify(ctx, ch, watcher)
	}()

	return ch
}

// watchNotify forwards fsnotify events, coalescing bursts per path.
func (w *Watcher) watchNotify(ctx context.Context, ch chan<- Event, watcher *fsnotify.Watcher) {
	pending := make(map[string]Op)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			path := absPath(event.Name)
			if !w.watched[path] {
				continue
			}
			op := notifyOp(event)
			if op == "" {
				continue
			}
			pending[path] = op
			timer.Reset(w.debounce)
			settle = timer.C

		case <-settle:
			settle = nil
			if !w.flush(ctx, ch, pending) {
				return
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable; keep watching.
			w.logger.Warn("file watcher error", slog.Any("error", err))
		}
	}
}

// watchPolling compares file stats on every tick.
func (w *Watcher) watchPolling(ctx context.Context, ch chan<- Event) {
	states := make(map[string]fileState, len(w.paths))
	for _, p := range w.paths {
		states[p] = statFile(p)
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			for _, p := range w.paths {
				prev, cur := states[p], statFile(p)
				if prev.same(cur) {
					continue
				}
				states[p] = cur

				op := OpWrite
				switch {
				case !cur.exists:
					op = OpRemove
				case !prev.exists:
					op = OpCreate
				}
				if !w.send(ctx, ch, Event{Path: p, Op: op}) {
					return
				}
			}
		}
	}
}

// flush sends pending events in path order and clears them.
// Returns false if ctx was cancelled first.
func (w *Watcher) flush(ctx context.Context, ch chan<- Event, pending map[string]Op) bool {
	paths := make([]string, 0, len(pending))
	for p := range pending {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if !w.send(ctx, ch, Event{Path: p, Op: pending[p]}) {
			return false
		}
		delete(pending, p)
	}
	return true
}

func (w *Watcher) send(ctx context.Context, ch chan<- Event, ev Event) bool {
	select {
	case ch <- ev:
		w.logger.Debug("file changed", slog.String("path", ev.Path), slog.String("op", string(ev.Op)))
		return true
	case <-ctx.Done():
		return false
	}
}

func (w *Watcher) dirs() []string {
	seen := make(map[string]bool)
	var dirs []string
	for _, p := range w.paths {
		dir := filepath.Dir(p)
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

func notifyOp(event fsnotify.Event) Op {
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return OpRemove
	case event.Has(fsnotify.Create):
		return OpCreate
	case event.Has(fsnotify.Write):
		return OpWrite
	default:
		return ""
	}
}

type fileState struct {
	exists  bool
	size    int64
	modTime time.Time
}

func statFile(path string) fileState {
	info, err := os.Stat(path)
	if err != nil {
		return fileState{}
	}
	return fileState{exists: true, size: info.Size(), modTime: info.ModTime()}
}

func (s fileState) same(other fileState) bool {
	return s.exists == other.exists && s.size == other.size && s.modTime.Equal(other.modTime)
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
