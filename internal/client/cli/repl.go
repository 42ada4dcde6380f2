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
	LoggedIn() bool
	CanManage() bool
	Menu(ctx context.Context) error
	Home(ctx context.Context) error
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Search(ctx context.Context, term string) error
	Toggle(ctx context.Context, arg string) error
	Refresh(ctx context.Context) error
	Manage(ctx context.Context) error
	Create(ctx context.Context) error
	Delete(ctx context.Context, arg string) error
}

// runREPL starts a simple read/eval/print loop for the game-site CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn). The "menu" command
// plays the role of the mobile app's hamburger drawer: it lists the
// navigation targets the current session may reach.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own failure notices. This keeps the REPL loop resilient and focused
// on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("gs %s> ", statusFn()))
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
			printHelp(a)

		case "menu":
			_ = a.Menu(ctx)

		case "home", "catalog":
			_ = a.Home(ctx)

		case "login":
			_ = a.Login(ctx)

		case "signup":
			_ = a.Signup(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "toggle":
			if len(args) == 0 {
				printlnFn("Usage: toggle <id>")
				continue
			}
			_ = a.Toggle(ctx, args[0])

		case "refresh":
			_ = a.Refresh(ctx)

		case "manage":
			_ = a.Manage(ctx)

		case "create":
			_ = a.Create(ctx)

		case "delete":
			if len(args) == 0 {
				printlnFn("Usage: delete <id>")
				continue
			}
			_ = a.Delete(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func printHelp(a execIface) {
	printlnFn("Navigation: menu, home, manage, exit")
	printlnFn("Catalog: (l)ist, search <text>, refresh")
	switch {
	case a.CanManage():
		printlnFn("Account: logout")
		printlnFn("Whitelist: toggle <id>")
		printlnFn("Listings (manage screen): create, delete <id>")
	case a.LoggedIn():
		printlnFn("Account: logout")
		printlnFn("Whitelist: toggle <id>")
	default:
		printlnFn("Account: login, signup")
	}
}
