package rulewatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/uaparser/pkg/logger"
)

// DefaultDebounce is the quiet period between the last file event and the
// reload it triggers.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a reload function whenever one rule file changes.
//
// The parent directory is watched rather than the file, so atomic saves
// (write to a temp file, rename over the original) are seen too.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger

	mu      sync.Mutex
	running bool
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period. Non-positive values are ignored.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger for watch events and reload failures.
func WithLogger(l *slog.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.log = l
		}
	}
}

// New returns a Watcher for the rule file at path.
func New(path string, opts ...Option) (*Watcher, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", path, err)
	}
	w := &Watcher{path: abs, debounce: DefaultDebounce, log: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With(logger.Component("rulewatch"), logger.RuleFile(abs))
	return w, nil
}

// Watch blocks until ctx is done, calling reload after every burst of
// changes to the file. A failing reload is logged and watching continues.
func (w *Watcher) Watch(ctx context.Context, reload func() error) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrAlreadyWatching
	}
	w.running = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(ErrWatch, err)
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		return errors.Join(ErrWatch, err)
	}
	w.log.Info("watching rule file")

	var (
		timer *time.Timer
		fire  = make(chan struct{}, 1)
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

		case ev, ok := <-fw.Events:
			if !ok {
				return ErrWatch
			}
			if !w.relevant(ev) {
				continue
			}
			w.log.Debug("rule file event", slog.String("op", ev.Op.String()))
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.debounce, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case <-fire:
			start := time.Now()
			if err := reload(); err != nil {
				w.log.Error("rule file reload failed", logger.Error(err))
				continue
			}
			w.log.Info("rule file reloaded", logger.Duration(time.Since(start)))

		case err, ok := <-fw.Errors:
			if !ok {
				return ErrWatch
			}
			w.log.Warn("watch error", logger.Error(err))
		}
	}
}

// Running reports whether Watch is active.
func (w *Watcher) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if ev.Op == fsnotify.Chmod {
		return false
	}
	return filepath.Clean(ev.Name) == w.path
}
