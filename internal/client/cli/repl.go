package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Animals(ctx context.Context, args []string) error
	Animal(ctx context.Context, args []string) error
	Adoptions(ctx context.Context, args []string) error
	Donors(ctx context.Context, args []string) error
	Volunteers(ctx context.Context, args []string) error
	Inventory(ctx context.Context, args []string) error
	LowStock(ctx context.Context, args []string) error
	VetUpcoming(ctx context.Context, args []string) error
	UploadPhoto(ctx context.Context, args []string) error
}

const (
	guestHelp  = "Available commands: login, animals, animal <id>, help, exit"
	memberHelp = "Available commands: whoami, animals, animal <id>, adoptions, donors, volunteers, inventory, low-stock, vet-upcoming [days], upload-photo <id> <file>, logout, help, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// Handler errors are printed and the loop continues. It returns on EOF, on
// "exit" or "quit", or once ctx is cancelled.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for ctx.Err() == nil {
		printlnFn(fmt.Sprintf("shelter %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
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
			if a.isLoggedIn(ctx) {
				printlnFn(memberHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "animals":
			cmdErr = a.Animals(ctx, args)

		case "animal":
			cmdErr = a.Animal(ctx, args)

		case "adoptions":
			cmdErr = a.Adoptions(ctx, args)

		case "donors":
			cmdErr = a.Donors(ctx, args)

		case "volunteers":
			cmdErr = a.Volunteers(ctx, args)

		case "inventory":
			cmdErr = a.Inventory(ctx, args)

		case "low-stock":
			cmdErr = a.LowStock(ctx, args)

		case "vet-upcoming":
			cmdErr = a.VetUpcoming(ctx, args)

		case "upload-photo":
			cmdErr = a.UploadPhoto(ctx, args)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describeError(cmdErr))
		}
	}
}
