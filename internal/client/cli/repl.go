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
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isAuthenticated() bool
	Token(ctx context.Context) error
	Use(ctx context.Context) error
	Edit(ctx context.Context) error
	Load(ctx context.Context) error
	Flush(ctx context.Context) error
	Discard(ctx context.Context) error
	Promote(ctx context.Context) error
	Prefer(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the DraftKeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	No token yet:
//	  - help           — show available commands
//	  - token          — paste an access token
//	  - status         — show connectivity and queue state
//	  - exit | quit    — leave the program
//
//	Token set:
//	  - help           — show available commands
//	  - use            — pick the draft to work on (form slug + object id)
//	  - edit           — enter fields and record a checkpoint
//	  - load           — fetch the server copy of the current draft
//	  - flush          — deliver queued checkpoints now
//	  - discard        — drop the draft locally and on the server
//	  - promote        — archive the draft as a durable version
//	  - prefer         — choose conflict policy (mine or server)
//	  - status         — show connectivity and queue state
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("dk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isAuthenticated() {
				printlnFn("Available commands: use, (e)dit, load, flush, discard, promote, prefer, status, exit")
			} else {
				printlnFn("Available commands: token, status, exit")
			}

		case "token":
			_ = a.Token(ctx)

		case "use":
			_ = a.Use(ctx)

		case "e", "edit":
			_ = a.Edit(ctx)

		case "load":
			_ = a.Load(ctx)

		case "flush":
			_ = a.Flush(ctx)

		case "discard":
			_ = a.Discard(ctx)

		case "promote":
			_ = a.Promote(ctx)

		case "prefer":
			_ = a.Prefer(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
