package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Send(ctx context.Context) error
	List(ctx context.Context) error
	Delete(ctx context.Context) error
	Theme(ctx context.Context) error
}

// runREPL reads a line, parses the first token as the command, and dispatches
// to methods on a. Unknown commands are reported back. The loop exits on EOF
// or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers surface
// their own failures as toasts. That keeps the loop resilient and focused
// on line I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("chat %s> ", statusFn()))

		line, readErr := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if readErr != nil {
				return
			}
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: send, (l)ist, delete, theme, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "send":
			_ = a.Send(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if readErr != nil {
			return
		}
	}
}
