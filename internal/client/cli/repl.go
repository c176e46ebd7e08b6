package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	Watch(ctx context.Context, args []string) error
	Unwatch(ctx context.Context) error
	List(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Filter(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Retry(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Events(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Toasts(ctx context.Context) error
}

const helpText = "Available commands: login, logout, upload <path>, watch <dir>, unwatch, " +
	"(l)ist, page <n>, filter [status=S] [user=U] [clear], delete <id>, retry <id>, " +
	"show <id>, events <id>, stats, toasts, exit"

// runREPL starts a simple read–eval–print loop for the photoctl CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// notify the user themselves. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("photoctl %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "upload":
			_ = a.Upload(ctx, args)

		case "watch":
			_ = a.Watch(ctx, args)

		case "unwatch":
			_ = a.Unwatch(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "page":
			_ = a.Page(ctx, args)

		case "filter":
			_ = a.Filter(ctx, args)

		case "delete":
			_ = a.Delete(ctx, args)

		case "retry":
			_ = a.Retry(ctx, args)

		case "show":
			_ = a.Show(ctx, args)

		case "events":
			_ = a.Events(ctx, args)

		case "stats":
			_ = a.Stats(ctx)

		case "toasts":
			_ = a.Toasts(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
