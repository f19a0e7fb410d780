package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = func(a ...any) { fmt.Println(a...) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ListTasks(ctx context.Context) error
	AddTask(ctx context.Context) error
	EditTask(ctx context.Context) error
	ToggleTask(ctx context.Context) error
	DeleteTask(ctx context.Context) error
	ShowTask(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on a. Unknown commands are reported to
// the user. The loop exits on scanner EOF or when the user types "exit" or
// "quit". Errors from command handlers are ignored here; handlers report
// their own failures, which keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tv%s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, edit, toggle, show, delete, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.ListTasks(ctx)

		case "add":
			_ = a.AddTask(ctx)

		case "edit":
			_ = a.EditTask(ctx)

		case "toggle":
			_ = a.ToggleTask(ctx)

		case "show":
			_ = a.ShowTask(ctx)

		case "delete", "del":
			_ = a.DeleteTask(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
