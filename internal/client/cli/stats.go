package cli

import (
	"context"

	"github.com/photoupload/photoctl/internal/client/notify"
)

// Stats prints collection-wide counters from the service.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.client.Stats(ctx)
	if err != nil {
		a.notify(notify.SeverityError, "stats failed: %v", err)
		return err
	}

	a.printfLine("Photos:     %d", stats.TotalPhotos)
	a.printfLine("Pending:    %d", stats.PendingPhotos)
	a.printfLine("Processing: %d", stats.ProcessingPhotos)
	a.printfLine("Failed:     %d", stats.FailedPhotos)
	return nil
}

// Toasts prints the notifications that are still visible.
func (a *App) Toasts(ctx context.Context) error {
	toasts := a.toasts.Toasts()
	if len(toasts) == 0 {
		a.printfLine("No active notifications.")
		return nil
	}
	for _, t := range toasts {
		a.printfLine("[%s] %s", t.Severity, t.Message)
	}
	return nil
}
