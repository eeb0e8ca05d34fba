package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error

	Competitions(ctx context.Context, args []string) error
	Seasons(ctx context.Context, args []string) error
	Teams(ctx context.Context, args []string) error
	Players(ctx context.Context, args []string) error
	Matches(ctx context.Context, args []string) error
	Match(ctx context.Context, args []string) error

	Notes(ctx context.Context, args []string) error
	AddNote(ctx context.Context, args []string) error
	EditNote(ctx context.Context, args []string) error
	DelNote(ctx context.Context, args []string) error

	Form(ctx context.Context, args []string) error
	H2H(ctx context.Context, args []string) error
	Streaks(ctx context.Context, args []string) error
	Table(ctx context.Context, args []string) error
	Dashboard(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, whoami, competitions, seasons, teams, players, " +
		"matches, match, form, h2h, streaks, table, dashboard, exit"
	helpSignedIn = "Available commands: whoami, competitions, seasons, teams, players, matches, match, " +
		"notes, addnote, editnote, delnote, form, h2h, streaks, table, dashboard, logout, exit"
)

// runREPL starts the read–eval–print loop.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to a. The remaining tokens are passed to the command as its
// arguments. A command error is printed and the loop carries on. The loop
// exits on EOF or when the user types "exit" or "quit".
//
// The prompt shows statusFn(), the current identity.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("goalline (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "competitions":
			cmdErr = a.Competitions(ctx, args)
		case "seasons":
			cmdErr = a.Seasons(ctx, args)
		case "teams":
			cmdErr = a.Teams(ctx, args)
		case "players":
			cmdErr = a.Players(ctx, args)
		case "matches":
			cmdErr = a.Matches(ctx, args)
		case "match":
			cmdErr = a.Match(ctx, args)

		case "notes":
			cmdErr = a.Notes(ctx, args)
		case "addnote":
			cmdErr = a.AddNote(ctx, args)
		case "editnote":
			cmdErr = a.EditNote(ctx, args)
		case "delnote":
			cmdErr = a.DelNote(ctx, args)

		case "form":
			cmdErr = a.Form(ctx, args)
		case "h2h":
			cmdErr = a.H2H(ctx, args)
		case "streaks":
			cmdErr = a.Streaks(ctx, args)
		case "table":
			cmdErr = a.Table(ctx, args)
		case "dashboard":
			cmdErr = a.Dashboard(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr.Error())
		}
		if err != nil {
			return
		}
	}
}
