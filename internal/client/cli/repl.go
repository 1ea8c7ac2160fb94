package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/gophdocs/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	List(ctx context.Context) error
	Reload(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Create(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Sort(ctx context.Context, args []string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Page(ctx context.Context, args []string) error
	Size(ctx context.Context, args []string) error
	Browse(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, help, exit"
	helpLoggedIn  = "Available commands: (l)ist, show <#|id>, create, edit <#|id>, delete <#|id>, " +
		"sort <field> [asc|desc], next, prev, page <n>, size <n>, reload, browse, logout, help, exit"
)

// runREPL is the read-eval-print loop of the client.
//
// It reads a line from reader, takes the first token as the command and the
// rest as its arguments, and dispatches to a. The loop exits on EOF or on
// "exit"/"quit".
//
// Document commands are refused with common.ErrNotLoggedIn while there is no
// session. Errors returned by handlers are printed and the loop goes on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gd %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if requiresSession(cmd) && !a.isLoggedIn() {
			printlnFn(common.ErrNotLoggedIn.Error())
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "l", "list":
			cmdErr = a.List(ctx)
		case "reload":
			cmdErr = a.Reload(ctx)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "create":
			cmdErr = a.Create(ctx)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete":
			cmdErr = a.Delete(ctx, args)
		case "sort":
			cmdErr = a.Sort(ctx, args)
		case "next":
			cmdErr = a.Next(ctx)
		case "prev":
			cmdErr = a.Prev(ctx)
		case "page":
			cmdErr = a.Page(ctx, args)
		case "size":
			cmdErr = a.Size(ctx, args)
		case "browse":
			cmdErr = a.Browse(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}

		if err != nil {
			return
		}
	}
}

func requiresSession(cmd string) bool {
	switch cmd {
	case "logout", "l", "list", "reload", "show", "create", "edit", "delete",
		"sort", "next", "prev", "page", "size", "browse":
		return true
	}
	return false
}
