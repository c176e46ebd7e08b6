// Package cli implements the interactive photoctl shell: a small REPL over
// the collection store, the upload orchestrator, and the notification queue.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/photoupload/photoctl/internal/client/api"
	"github.com/photoupload/photoctl/internal/client/config"
	"github.com/photoupload/photoctl/internal/client/notify"
	"github.com/photoupload/photoctl/internal/client/store"
	"github.com/photoupload/photoctl/internal/client/upload"
	"github.com/photoupload/photoctl/internal/logging"
)

// Mode reflects the last known reachability of the photo service.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the client components together for one interactive session.
type App struct {
	config   *config.Config
	log      logging.Logger
	client   api.Client
	store    *store.Store
	uploader *upload.Orchestrator
	toasts   *notify.Queue

	reader *bufio.Reader
	out    io.Writer

	mu          sync.Mutex
	mode        Mode
	subject     string
	watchCancel context.CancelFunc
}

// NewApp builds a fully wired App from configuration.
func NewApp(cfg *config.Config) *App {
	log := newLogger(cfg)

	client := api.NewHTTPClient(cfg.APIBaseURL, cfg.Username, cfg.Password, cfg.RequestTimeout)
	if cfg.Token != "" {
		client.SetToken(cfg.Token)
	}

	st := store.New(client, log)
	st.SetPageSize(cfg.PageSize)
	st.SetFilters(filtersForUser(cfg.UserID))

	a := &App{
		config:   cfg,
		log:      log,
		client:   client,
		store:    st,
		uploader: upload.NewOrchestrator(client, st, upload.Policy{MaxBytes: cfg.UploadMaxBytes}, log),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
	a.toasts = notify.NewQueue(a.printToast)
	return a
}

func newLogger(cfg *config.Config) logging.Logger {
	if cfg.LogFormat == "json" {
		return logging.NewJSONLogger(os.Stderr)
	}
	return logging.NewConsoleLogger(os.Stderr)
}

// Run starts the online watcher and hands control to the REPL. It returns
// when the user exits, after releasing timers and transport resources.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.dispose()

	fmt.Fprintln(a.out, "Welcome to photoctl (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// dispose cancels outstanding toast timers, stops any directory watcher,
// and closes the transport. In-flight results arriving afterwards are
// ignorable by design.
func (a *App) dispose() {
	a.mu.Lock()
	cancel := a.watchCancel
	a.watchCancel = nil
	a.mu.Unlock()
	if cancel != nil {
		cancel()
	}

	a.toasts.Close()
	_ = a.client.Close()
}

func (a *App) getStatus() string {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := ""
	if a.subject != "" {
		s = a.subject + " "
	} else {
		s = a.config.UserID + " "
	}
	if a.mode != ModeUnknown {
		s += string(a.mode)
	}
	return fmt.Sprintf("(%s)", s)
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// StartOnlineStatusWatcher periodically probes the service and flips the
// session between online and offline mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			_, err := a.client.Stats(probeCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

// printToast renders a queued toast to the terminal.
func (a *App) printToast(t notify.Toast) {
	fmt.Fprintf(a.out, "[%s] %s\n", t.Severity, t.Message)
}

func (a *App) notify(severity notify.Severity, format string, args ...any) {
	a.toasts.Add(fmt.Sprintf(format, args...), severity, a.config.ToastDuration)
}

func (a *App) printfLine(format string, args ...any) {
	fmt.Fprintf(a.out, format+"\n", args...)
}
