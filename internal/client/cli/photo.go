package cli

import (
	"context"
	"errors"
	"strconv"

	"github.com/photoupload/photoctl/internal/client/api"
	"github.com/photoupload/photoctl/internal/client/notify"
	"github.com/photoupload/photoctl/internal/client/store"
)

// Delete removes a photo on the server and from the local collection.
func (a *App) Delete(ctx context.Context, args []string) error {
	id, err := a.photoID(args)
	if err != nil {
		return err
	}

	if err := a.store.Delete(ctx, id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			a.notify(notify.SeverityWarning, "photo %d does not exist", id)
		} else {
			a.notify(notify.SeverityError, "delete failed: %v", err)
		}
		return err
	}

	a.notify(notify.SeveritySuccess, "deleted photo %d", id)
	return nil
}

// Retry asks the server to reprocess a failed photo.
func (a *App) Retry(ctx context.Context, args []string) error {
	id, err := a.photoID(args)
	if err != nil {
		return err
	}

	if err := a.store.Retry(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotRetryable) {
			a.notify(notify.SeverityWarning, "photo %d is not in a failed state", id)
		} else {
			a.notify(notify.SeverityError, "retry failed: %v", err)
		}
		return err
	}

	a.notify(notify.SeveritySuccess, "retry requested for photo %d", id)
	return nil
}

// Show prints a single photo record in detail.
func (a *App) Show(ctx context.Context, args []string) error {
	id, err := a.photoID(args)
	if err != nil {
		return err
	}

	photo, err := a.client.Get(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			a.notify(notify.SeverityWarning, "photo %d does not exist", id)
		} else {
			a.notify(notify.SeverityError, "show failed: %v", err)
		}
		return err
	}

	a.printfLine("Photo %d", photo.ID)
	a.printfLine("  file:     %s (%s, %d bytes)", photo.OriginalFileName, photo.ContentType, photo.FileSize)
	a.printfLine("  status:   %s", photo.Status)
	a.printfLine("  uploaded: %s", photo.UploadedAt.Format("2006-01-02 15:04:05"))
	if photo.Width > 0 && photo.Height > 0 {
		a.printfLine("  size:     %dx%d", photo.Width, photo.Height)
	}
	if photo.StorageURL != "" {
		a.printfLine("  storage:  %s", photo.StorageURL)
	}
	if photo.ThumbnailURL != "" {
		a.printfLine("  thumb:    %s", photo.ThumbnailURL)
	}
	if photo.RetryCount > 0 {
		a.printfLine("  retries:  %d", photo.RetryCount)
	}
	if photo.LastError != "" {
		a.printfLine("  error:    %s", photo.LastError)
	}
	return nil
}

// Events prints the lifecycle audit trail of a photo, oldest first.
func (a *App) Events(ctx context.Context, args []string) error {
	id, err := a.photoID(args)
	if err != nil {
		return err
	}

	events, err := a.client.Events(ctx, id)
	if err != nil {
		a.notify(notify.SeverityError, "events failed: %v", err)
		return err
	}
	if len(events) == 0 {
		a.printfLine("No events for photo %d.", id)
		return nil
	}

	for _, ev := range events {
		line := ev.Timestamp.Format("2006-01-02 15:04:05") + "  " + ev.EventType
		if ev.Success != nil && !*ev.Success {
			line += "  FAILED"
			if ev.ErrorMessage != "" {
				line += ": " + ev.ErrorMessage
			}
		} else if ev.Details != "" {
			line += "  " + ev.Details
		}
		a.printfLine("%s", line)
	}
	return nil
}

// photoID parses the photo id from the arguments or an interactive prompt.
func (a *App) photoID(args []string) (int64, error) {
	raw, err := a.argOrPrompt(args, "Enter photo id")
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		a.notify(notify.SeverityWarning, "invalid photo id: %s", raw)
		return 0, errors.New("invalid photo id")
	}
	return id, nil
}
