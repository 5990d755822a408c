package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error

	Fetch(ctx context.Context) error
	Store(ctx context.Context) error
	ListRecipes(ctx context.Context) error
	ShowRecipe(ctx context.Context) error
	AddRecipe(ctx context.Context) error
	DeleteRecipe(ctx context.Context) error
	ToShoppingList(ctx context.Context) error

	ShowShoppingList(ctx context.Context) error
	AddItem(ctx context.Context) error
	EditItem(ctx context.Context) error
	DeleteItem(ctx context.Context) error

	Backup(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, signup, help, exit"
	helpLoggedIn  = "Available commands: fetch, store, recipes, show, addrecipe, delrecipe, tolist, " +
		"shopping, additem, edititem, delitem, backup, whoami, logout, exit"
)

// runREPL reads commands line by line and dispatches them. It exits on EOF
// or on "exit"/"quit". Handler errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "rk> %s > ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		var cmdErr error
		switch cmd := parts[0]; cmd {
		case "exit", "quit":
			return

		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpLoggedIn)
			} else {
				fmt.Fprintln(w, helpLoggedOut)
			}

		case "login":
			cmdErr = a.Login(ctx)
		case "signup":
			cmdErr = a.Signup(ctx)

		default:
			if !a.isLoggedIn() {
				fmt.Fprintln(w, "Unknown command. "+helpLoggedOut)
				continue
			}
			switch cmd {
			case "logout":
				cmdErr = a.Logout(ctx)
			case "whoami":
				cmdErr = a.WhoAmI(ctx)
			case "fetch":
				cmdErr = a.Fetch(ctx)
			case "store":
				cmdErr = a.Store(ctx)
			case "recipes":
				cmdErr = a.ListRecipes(ctx)
			case "show":
				cmdErr = a.ShowRecipe(ctx)
			case "addrecipe":
				cmdErr = a.AddRecipe(ctx)
			case "delrecipe":
				cmdErr = a.DeleteRecipe(ctx)
			case "tolist":
				cmdErr = a.ToShoppingList(ctx)
			case "shopping":
				cmdErr = a.ShowShoppingList(ctx)
			case "additem":
				cmdErr = a.AddItem(ctx)
			case "edititem":
				cmdErr = a.EditItem(ctx)
			case "delitem":
				cmdErr = a.DeleteItem(ctx)
			case "backup":
				cmdErr = a.Backup(ctx)
			default:
				fmt.Fprintln(w, "Unknown command. "+helpLoggedIn)
			}
		}

		if cmdErr != nil {
			fmt.Fprintln(w, cmdErr.Error())
		}
	}
}
