// SPDX-License-Identifier: MPL-2.0

// Package watch recompiles on change: it monitors one directory, filters
// events by glob pattern, and invokes a callback once a debounce period has
// passed without further matching events.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync/atomic"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce lets an editor's write-then-rename sequence coalesce into
// a single callback.
const DefaultDebounce = 300 * time.Millisecond

// ErrAlreadyStarted is returned by a second call to Run.
var ErrAlreadyStarted = errors.New("watch: Run called more than once")

// defaultIgnores exclude editor swap and backup files.
var defaultIgnores = []string{
	"*.swp",
	"*.swo",
	"*~",
	".#*",
	".DS_Store",
}

type (
	// Config holds the parameters for a Watcher.
	Config struct {
		// Dir is the directory to watch, non-recursively. Empty means the
		// working directory.
		Dir string

		// Patterns are doublestar globs matched against file names in Dir.
		// An empty slice matches every non-ignored file.
		Patterns []string

		// Debounce is the quiet period before OnChange fires. Zero or
		// negative values select DefaultDebounce.
		Debounce time.Duration

		// OnChange receives the sorted names of the files that changed. Its
		// errors are logged and watching continues.
		OnChange func(ctx context.Context, changed []string) error

		Logger *log.Logger
	}

	// Watcher runs Config.OnChange after matching changes in Config.Dir.
	Watcher struct {
		cfg      Config
		fsw      *fsnotify.Watcher
		dir      string
		debounce time.Duration
		logger   *log.Logger
		started  atomic.Bool
	}
)

// New validates cfg and starts watching its directory.
func New(cfg Config) (*Watcher, error) {
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve directory: %w", err)
	}

	for _, pat := range cfg.Patterns {
		if !doublestar.ValidatePattern(pat) {
			return nil, fmt.Errorf("watch: invalid pattern %q: %w", pat, doublestar.ErrBadPattern)
		}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: create fsnotify watcher: %w", err)
	}
	if err := fsw.Add(absDir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watch: add directory %q: %w", absDir, err)
	}

	debounce := cfg.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Watcher{cfg: cfg, fsw: fsw, dir: absDir, debounce: debounce, logger: logger}, nil
}

// Dir returns the absolute watched directory.
func (w *Watcher) Dir() string { return w.dir }

// Run processes events until ctx is canceled, then releases the underlying
// watcher. The callback runs on the calling goroutine, so events arriving
// during a callback are handled after it returns.
func (w *Watcher) Run(ctx context.Context) error {
	if !w.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	defer func() {
		if err := w.fsw.Close(); err != nil {
			w.logger.Warn("failed to close watcher", "err", err)
		}
	}()

	pending := make(map[string]struct{})
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case evt, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("watch: event channel closed unexpectedly")
			}
			if evt.Has(fsnotify.Chmod) && !evt.Has(fsnotify.Write) {
				continue
			}
			name, ok := w.relevant(evt.Name)
			if !ok {
				continue
			}
			w.logger.Debug("change detected", "file", name, "op", evt.Op.String())
			pending[name] = struct{}{}
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("watch: error channel closed unexpectedly")
			}
			if isFatalFsnotifyError(err) {
				return fmt.Errorf("watch: fatal fsnotify error: %w", err)
			}
			w.logger.Warn("watch error", "err", err)

		case <-timer.C:
			if len(pending) == 0 {
				continue
			}
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			slices.Sort(changed)
			clear(pending)

			if w.cfg.OnChange != nil {
				if err := w.cfg.OnChange(ctx, changed); err != nil {
					w.logger.Error("change handler failed", "err", err)
				}
			}
		}
	}
}

// relevant returns the file name for path when it lies directly in the
// watched directory, is not ignored and matches the configured patterns.
func (w *Watcher) relevant(path string) (string, bool) {
	if filepath.Dir(path) != w.dir {
		return "", false
	}
	name := filepath.Base(path)
	if matchesAny(defaultIgnores, name) {
		return "", false
	}
	if len(w.cfg.Patterns) > 0 && !matchesAny(w.cfg.Patterns, name) {
		return "", false
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return "", false
	}
	return name, true
}

func matchesAny(patterns []string, name string) bool {
	for _, pat := range patterns {
		if ok, err := doublestar.Match(pat, name); err == nil && ok {
			return true
		}
	}
	return false
}
