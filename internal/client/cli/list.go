package cli

import (
	"context"
	"strconv"
	"strings"

	"github.com/photoupload/photoctl/internal/client/models"
	"github.com/photoupload/photoctl/internal/client/notify"
)

func filtersForUser(userID string) models.Filters {
	return models.Filters{UserID: userID}
}

// List loads the current page from the service and prints it.
func (a *App) List(ctx context.Context) error {
	info := a.store.Page()
	return a.loadAndPrint(ctx, info.Page, info.Size)
}

// Page jumps to a 0-based page number and prints it.
func (a *App) Page(ctx context.Context, args []string) error {
	raw, err := a.argOrPrompt(args, "Enter page number (0-based)")
	if err != nil {
		return err
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		a.notify(notify.SeverityWarning, "invalid page number: %s", raw)
		return nil
	}
	return a.loadAndPrint(ctx, page, a.store.Page().Size)
}

// Filter adjusts the collection filters and reloads from page zero.
// Arguments are "status=<STATUS>", "user=<id>", or "clear".
func (a *App) Filter(ctx context.Context, args []string) error {
	if len(args) == 0 {
		f := a.store.Filters()
		a.printfLine("Active filters: user=%q status=%q", f.UserID, f.Status)
		return nil
	}

	for _, arg := range args {
		switch {
		case arg == "clear":
			a.store.ClearFilters()

		case strings.HasPrefix(arg, "status="):
			status := models.PhotoStatus(strings.ToUpper(strings.TrimPrefix(arg, "status=")))
			if !status.Known() {
				a.notify(notify.SeverityWarning, "unknown status: %s", status)
				return nil
			}
			a.store.SetFilters(models.Filters{Status: status})

		case strings.HasPrefix(arg, "user="):
			a.store.SetFilters(models.Filters{UserID: strings.TrimPrefix(arg, "user=")})

		default:
			a.notify(notify.SeverityWarning, "unknown filter: %s", arg)
			return nil
		}
	}

	return a.loadAndPrint(ctx, 0, a.store.Page().Size)
}

func (a *App) loadAndPrint(ctx context.Context, page, size int) error {
	_, err := a.store.Load(ctx, page, size)
	if err != nil {
		a.notify(notify.SeverityError, "list failed: %v", err)
		return err
	}
	a.printPhotos()
	return nil
}

func (a *App) printPhotos() {
	photos := a.store.Photos()
	info := a.store.Page()

	if len(photos) == 0 {
		a.printfLine("No photos found.")
		return
	}

	for _, p := range photos {
		line := formatPhotoLine(p)
		a.printfLine("%s", line)
	}
	a.printfLine("Page %d of %d (%d photos total)", info.Page+1, max(info.TotalPages, 1), info.TotalElements)
}

func formatPhotoLine(p models.Photo) string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(p.ID, 10))
	b.WriteString("  ")
	b.WriteString(string(p.Status))
	b.WriteString("  ")
	b.WriteString(p.OriginalFileName)
	if p.Status == models.StatusFailed && p.LastError != "" {
		b.WriteString("  (")
		b.WriteString(p.LastError)
		b.WriteString(")")
	}
	return b.String()
}
