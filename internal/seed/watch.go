package seed

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/maruel/memberstore/internal/storage"
)

// DefaultMinInterval is the default minimum delay between two reloads.
const DefaultMinInterval = 200 * time.Millisecond

// Options configures Watch.
type Options struct {
	// MinInterval throttles reloads; bursts of events within it collapse
	// into a single reload. Defaults to DefaultMinInterval.
	MinInterval time.Duration
	// OnReload, if set, is called after each reload attempt with the
	// number of members loaded or the error.
	OnReload func(n int, err error)
}

// Watch re-hydrates s from path each time the file is written or replaced.
//
// The parent directory is watched so editors that save by rename are
// handled. A file that fails to decode is logged and the store keeps its
// previous content. Watching stops when ctx is cancelled.
func Watch(ctx context.Context, s *storage.MemberStore, path string, opts Options) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if _, err := FormatFromPath(abs); err != nil {
		return err
	}
	if opts.MinInterval <= 0 {
		opts.MinInterval = DefaultMinInterval
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	limiter := rate.NewLimiter(rate.Every(opts.MinInterval), 1)
	go func() {
		defer func() { _ = w.Close() }()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
						slog.WarnContext(ctx, "Seed file moved away, keeping current members", "path", abs)
					}
					continue
				}
				if err := limiter.Wait(ctx); err != nil {
					return
				}
				drain(w.Events)
				reload(ctx, s, abs, opts.OnReload)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.WarnContext(ctx, "Error watching seed file", "err", err)
			}
		}
	}()
	return nil
}

// drain discards events already queued.
func drain(events <-chan fsnotify.Event) {
	for {
		select {
		case _, ok := <-events:
			if !ok {
				return
			}
		default:
			return
		}
	}
}

func reload(ctx context.Context, s *storage.MemberStore, path string, onReload func(int, error)) {
	members, err := Load(path)
	if err == nil {
		err = s.SetMembers(members)
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed to reload seed file", "path", path, "err", err)
		if onReload != nil {
			onReload(0, err)
		}
		return
	}
	slog.InfoContext(ctx, "Reloaded seed file", "path", path, "members", len(members))
	if onReload != nil {
		onReload(len(members), nil)
	}
}
