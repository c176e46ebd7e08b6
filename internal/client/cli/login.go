package cli

import (
	"context"
	"time"

	"github.com/photoupload/photoctl/internal/client/auth"
	"github.com/photoupload/photoctl/internal/client/notify"
)

// getSecret is an indirection used to facilitate testing.
var getSecret = GetSecret

// Login installs a bearer token for the session. The token is read without
// echo, inspected (unverified) for its subject and expiry, and handed to
// the API client. Until a token is installed requests fall back to the
// configured basic-auth credentials.
func (a *App) Login(ctx context.Context) error {
	token, err := getSecret("Paste bearer token", a.out)
	if err != nil {
		return err
	}
	if len(token) == 0 {
		a.notify(notify.SeverityWarning, "no token entered; staying on basic auth")
		return nil
	}

	info, err := auth.Inspect(string(token))
	if err != nil {
		a.notify(notify.SeverityError, "token rejected: %v", err)
		return err
	}
	if info.Expired(time.Now()) {
		a.notify(notify.SeverityWarning, "token for %s is expired; requests will likely fail", info.Subject)
	}

	a.client.SetToken(string(token))

	a.mu.Lock()
	a.subject = info.Subject
	a.mu.Unlock()

	a.notify(notify.SeveritySuccess, "logged in as %s", info.Subject)
	return nil
}

// Logout clears the bearer token, reverting to basic-auth fallback.
func (a *App) Logout(ctx context.Context) error {
	a.client.SetToken("")

	a.mu.Lock()
	a.subject = ""
	a.mu.Unlock()

	a.notify(notify.SeverityInfo, "logged out")
	return nil
}
