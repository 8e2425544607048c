// SPDX-License-Identifier: MIT

package site

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	xglog "github.com/exeme-project/exeme-lang/internal/log"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// ErrWatcherStarted is returned when StartWatcher is called more than once.
var ErrWatcherStarted = errors.New("site config watcher already started")

// DefaultDebounce is the quiet period after the last file event before a reload.
const DefaultDebounce = 500 * time.Millisecond

// Holder keeps the record loaded from an overlay file and reloads it when the
// file changes. A failed reload keeps the previous record.
type Holder struct {
	mu       sync.RWMutex
	current  SiteConfig
	path     string
	debounce time.Duration
	watcher  *fsnotify.Watcher
	logger   zerolog.Logger
	started  bool
	done     chan struct{}

	listenMu  sync.RWMutex
	listeners []chan<- SiteConfig
}

// NewHolder loads and validates the overlay at path. An empty path holds the
// built-in record and never reloads.
func NewHolder(path string, debounce time.Duration) (*Holder, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	h := &Holder{
		path:     path,
		debounce: debounce,
		logger:   xglog.WithComponent("site"),
		done:     make(chan struct{}),
	}

	cfg, err := h.load()
	if err != nil {
		return nil, err
	}
	h.current = cfg
	LogLoaded(h.logger, path, cfg)
	return h, nil
}

func (h *Holder) load() (SiteConfig, error) {
	if h.path == "" {
		return Load(), nil
	}
	cfg, err := LoadFile(h.path)
	if err != nil {
		return SiteConfig{}, fmt.Errorf("load site config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("validate site config: %w", err)
	}
	return cfg, nil
}

// Get returns a copy of the current record.
func (h *Holder) Get() SiteConfig {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return Clone(h.current)
}

// Path returns the overlay path, or "" for the built-in record.
func (h *Holder) Path() string {
	return h.path
}

// Reload re-reads the overlay. Either the new record is valid and replaces the
// current one, or the current one stays and the error is returned.
func (h *Holder) Reload(ctx context.Context) error {
	logger := xglog.WithContext(ctx, h.logger)
	logger.Info().Str(xglog.FieldEvent, "site.reload_start").Str(xglog.FieldPath, h.path).Msg("reloading site config")

	next, err := h.load()
	if err != nil {
		logger.Error().Err(err).Str(xglog.FieldEvent, "site.reload_failed").Msg("keeping previous site config")
		return err
	}

	h.mu.Lock()
	prev := h.current
	h.current = next
	h.mu.Unlock()

	if diff := Diff(prev, next); diff != "" {
		logger.Info().Str(xglog.FieldEvent, "site.changed").Str("diff", diff).Msg("site config changed")
	}

	LogLoaded(logger, h.path, next)
	h.notifyListeners(next)
	return nil
}

// StartWatcher watches the overlay's directory and reloads after writes to the
// overlay settle. It returns immediately; the loop stops when ctx is done.
// Only the first call starts a watcher; later calls return ErrWatcherStarted.
func (h *Holder) StartWatcher(ctx context.Context) error {
	h.mu.Lock()
	if h.started {
		h.mu.Unlock()
		return ErrWatcherStarted
	}
	h.started = true
	h.mu.Unlock()

	if h.path == "" {
		h.logger.Info().Str(xglog.FieldEvent, "site.watcher_disabled").Msg("no overlay file, watcher disabled")
		close(h.done)
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		close(h.done)
		return fmt.Errorf("create watcher: %w", err)
	}
	// Editors often replace the file, so watch the directory.
	if err := watcher.Add(filepath.Dir(h.path)); err != nil {
		_ = watcher.Close()
		close(h.done)
		return fmt.Errorf("watch site config dir: %w", err)
	}
	h.watcher = watcher

	h.logger.Info().
		Str(xglog.FieldEvent, "site.watcher_started").
		Str(xglog.FieldPath, h.path).
		Msg("watching site config for changes")

	go h.watchLoop(ctx)
	return nil
}

// Done is closed once the watch loop has exited, or right away when
// StartWatcher found nothing to watch or failed.
func (h *Holder) Done() <-chan struct{} {
	return h.done
}

func (h *Holder) watchLoop(ctx context.Context) {
	defer close(h.done)
	defer func() { _ = h.watcher.Close() }()

	target := filepath.Clean(h.path)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(xglog.FieldEvent, "site.watcher_stopped").Msg("site config watcher stopped")
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			h.logger.Debug().
				Str(xglog.FieldEvent, "site.file_changed").
				Str("op", event.Op.String()).
				Msg("site config file changed")

			if timer == nil {
				timer = time.NewTimer(h.debounce)
			} else {
				timer.Reset(h.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			// Errors are logged by Reload; the previous record stays active.
			_ = h.Reload(ctx)

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				h.logger.Warn().Str(xglog.FieldEvent, "site.watcher_overflow").Msg("watcher event overflow")
				continue
			}
			h.logger.Error().Err(err).Str(xglog.FieldEvent, "site.watcher_error").Msg("site config watcher error")
		}
	}
}

// RegisterListener registers a channel that receives each successfully
// reloaded record. Every listener gets its own copy. Sends never block; a full
// channel misses the update.
func (h *Holder) RegisterListener(ch chan<- SiteConfig) {
	h.listenMu.Lock()
	defer h.listenMu.Unlock()
	h.listeners = append(h.listeners, ch)
}

func (h *Holder) notifyListeners(cfg SiteConfig) {
	h.listenMu.RLock()
	defer h.listenMu.RUnlock()

	for _, ch := range h.listeners {
		select {
		case ch <- Clone(cfg):
		default:
			h.logger.Warn().
				Str(xglog.FieldEvent, "site.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}
