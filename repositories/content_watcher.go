package repositories

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"lafamilia/utils"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const ReloadDebounce = 300 * time.Millisecond

// WatchContent invalidates the store when files in its directory change.
// Bursts of events collapse into one invalidation after ReloadDebounce of
// quiet. It returns once the watcher is running; ctx stops it.
func WatchContent(ctx context.Context, store *ContentStore, log *zap.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create data watcher: %w", err)
	}
	if err := watcher.Add(store.Dir()); err != nil {
		watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", store.Dir(), err)
	}

	debouncer := utils.NewDebouncer(ReloadDebounce, func() {
		store.Invalidate(context.Background())
	})

	go func() {
		defer watcher.Close()
		defer debouncer.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Ext(ev.Name) != ".json" || ev.Op == fsnotify.Chmod {
					continue
				}
				log.Debug("data file changed", zap.String("file", ev.Name), zap.String("op", ev.Op.String()))
				debouncer.Trigger()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("data watcher error", zap.Error(err))
			}
		}
	}()

	log.Info("watching data directory", zap.String("dir", store.Dir()))
	return nil
}
