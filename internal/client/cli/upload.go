package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/photoupload/photoctl/internal/client/notify"
	"github.com/photoupload/photoctl/internal/client/upload"
)

// Upload sends one file to the service, printing progress as it streams.
// The path comes from the command arguments or an interactive prompt.
func (a *App) Upload(ctx context.Context, args []string) error {
	path, err := a.argOrPrompt(args, "Enter path of the photo to upload")
	if err != nil {
		return err
	}

	photo, err := a.uploader.UploadFile(ctx, path, a.config.UserID, func(pct int) {
		fmt.Fprintf(a.out, "\r%3d%%", pct)
	})
	fmt.Fprintln(a.out)

	if err != nil {
		var vErr *upload.ValidationError
		if errors.As(err, &vErr) {
			a.notify(notify.SeverityError, "%s", vErr.Reason)
		} else {
			a.notify(notify.SeverityError, "upload failed: %v", err)
		}
		return err
	}

	a.notify(notify.SeveritySuccess, "uploaded %s (photo %d, %s)",
		photo.OriginalFileName, photo.ID, photo.Status)
	return nil
}

// argOrPrompt returns the first argument if present, otherwise asks.
func (a *App) argOrPrompt(args []string, prompt string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}
