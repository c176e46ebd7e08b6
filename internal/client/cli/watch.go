package cli

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/photoupload/photoctl/internal/client/notify"
)

// watchStableAfter is how long a created file must sit unchanged before it
// is considered fully written and worth uploading.
const watchStableAfter = 300 * time.Millisecond

var watchedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// Watch starts a background watcher that uploads image files dropped into
// the given directory. Only one watcher runs at a time; a second Watch
// replaces the first.
func (a *App) Watch(ctx context.Context, args []string) error {
	dir, err := a.argOrPrompt(args, "Enter directory to watch")
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		a.notify(notify.SeverityError, "cannot start watcher: %v", err)
		return err
	}
	if err := watcher.Add(dir); err != nil {
		_ = watcher.Close()
		a.notify(notify.SeverityError, "cannot watch %s: %v", dir, err)
		return err
	}

	watchCtx, cancel := context.WithCancel(ctx)

	a.mu.Lock()
	if a.watchCancel != nil {
		a.watchCancel()
	}
	a.watchCancel = cancel
	a.mu.Unlock()

	go a.runWatcher(watchCtx, watcher, dir)

	a.notify(notify.SeverityInfo, "watching %s for new photos", dir)
	return nil
}

// Unwatch stops the active directory watcher, if any.
func (a *App) Unwatch(ctx context.Context) error {
	a.mu.Lock()
	cancel := a.watchCancel
	a.watchCancel = nil
	a.mu.Unlock()

	if cancel == nil {
		a.notify(notify.SeverityInfo, "no watcher is running")
		return nil
	}
	cancel()
	a.notify(notify.SeverityInfo, "stopped watching")
	return nil
}

// runWatcher debounces create events until files look stable, then uploads
// each concurrently through the orchestrator.
func (a *App) runWatcher(ctx context.Context, watcher *fsnotify.Watcher, dir string) {
	defer watcher.Close()

	pending := map[string]time.Time{}
	ticker := time.NewTicker(250 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if ev.Op&fsnotify.Create == fsnotify.Create && isWatchedFile(ev.Name) {
				pending[ev.Name] = time.Now()
			}
			// Rewrites restart the stability clock.
			if ev.Op&fsnotify.Write == fsnotify.Write {
				if _, ok := pending[ev.Name]; ok {
					pending[ev.Name] = time.Now()
				}
			}

		case <-ticker.C:
			now := time.Now()
			for path, seen := range pending {
				if now.Sub(seen) > watchStableAfter {
					delete(pending, path)
					go a.uploadWatched(ctx, path)
				}
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			a.log.Warn(ctx, "watcher error", "dir", dir, "error", err)

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) uploadWatched(ctx context.Context, path string) {
	photo, err := a.uploader.UploadFile(ctx, path, a.config.UserID, nil)
	if err != nil {
		a.notify(notify.SeverityError, "auto-upload of %s failed: %v", filepath.Base(path), err)
		return
	}
	a.notify(notify.SeveritySuccess, "auto-uploaded %s (photo %d)", photo.OriginalFileName, photo.ID)
}

func isWatchedFile(path string) bool {
	return watchedExtensions[strings.ToLower(filepath.Ext(path))]
}
