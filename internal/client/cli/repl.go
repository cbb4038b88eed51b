package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	List(ctx context.Context) error
	Create(ctx context.Context) error
	Usage(ctx context.Context, ref string) error
	Logout(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the FlowGate CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Which commands exist depends on whether the
// user is signed in; anything else is reported back as unknown. The loop
// exits on EOF or when the user types "exit" or "quit".
//
//	Signed out:
//	  - help           show available commands
//	  - login          sign in
//	  - register       create an account (resumes an unfinished one)
//	  - exit | quit    leave the program
//
//	Signed in:
//	  - help           show available commands
//	  - (l)ist         list APIs
//	  - create         provision an API
//	  - usage <api>    show the proxy call for an API (id or name)
//	  - logout         sign out
//	  - exit | quit    leave the program
//
// Command handlers report their own failures to the user, so the errors they
// return (input errors only) are ignored here.
//
// reader is shared with the interactive prompts of the handlers; out receives
// the prompt and the REPL's own messages.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		_, _ = fmt.Fprintf(out, "fg %s> \n", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		if parts := strings.Fields(line); len(parts) > 0 {
			if !dispatch(ctx, a, out, parts[0], parts[1:]) {
				return
			}
		}
		if err != nil {
			return
		}
	}
}

// dispatch runs one command and reports whether the loop should continue.
func dispatch(ctx context.Context, a execIface, out io.Writer, cmd string, args []string) bool {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			_, _ = fmt.Fprintln(out, "Available commands: (l)ist, create, usage <api>, logout, exit")
		} else {
			_, _ = fmt.Fprintln(out, "Available commands: login, register, exit")
		}
		return true
	case "exit", "quit":
		_, _ = fmt.Fprintln(out, "Bye!")
		return false
	}

	if !a.isLoggedIn() {
		switch cmd {
		case "login":
			_ = a.Login(ctx)
		case "register":
			_ = a.Register(ctx)
		default:
			_, _ = fmt.Fprintln(out, "Unknown command:", cmd)
		}
		return true
	}

	switch cmd {
	case "l", "list":
		_ = a.List(ctx)
	case "create":
		_ = a.Create(ctx)
	case "usage":
		if len(args) == 0 {
			_, _ = fmt.Fprintln(out, "Usage: usage <id|name>")
			break
		}
		_ = a.Usage(ctx, strings.Join(args, " "))
	case "logout":
		_ = a.Logout(ctx)
	default:
		_, _ = fmt.Fprintln(out, "Unknown command:", cmd)
	}
	return true
}
