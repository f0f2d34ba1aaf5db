package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/MustafaTekin48/marine-field-app/internal/client/workflow"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	MenuItems() []workflow.ID
	RunWorkflow(ctx context.Context, id workflow.ID) error
}

// runREPL starts the read-eval-print loop of the field client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Before login only "login" is accepted. After login the menu consists of
// the workflows unlocked by the session's roles; typing a workflow name
// (forklift, manlift, scaffold, electricity, water) starts its form. A
// workflow outside the role set is treated as unknown.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("marine %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: " + menuLine(a.MenuItems()))
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if id, ok := matchWorkflow(a, cmd); ok {
				_ = a.RunWorkflow(ctx, id)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}
	}
}

// matchWorkflow resolves cmd against the workflows the session may run.
func matchWorkflow(a execIface, cmd string) (workflow.ID, bool) {
	for _, id := range a.MenuItems() {
		if string(id) == cmd {
			return id, true
		}
	}
	return "", false
}

func menuLine(items []workflow.ID) string {
	names := make([]string, 0, len(items)+2)
	for _, id := range items {
		names = append(names, string(id))
	}
	names = append(names, "logout", "exit")
	return strings.Join(names, ", ")
}
