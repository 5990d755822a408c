package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubExec records which commands were dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
	errOn    string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	if s.errOn == name {
		return errors.New("This password is not correct")
	}
	return nil
}

func (s *stubExec) isLoggedIn() bool { return s.loggedIn }

func (s *stubExec) Login(ctx context.Context) error            { return s.record("login") }
func (s *stubExec) Signup(ctx context.Context) error           { return s.record("signup") }
func (s *stubExec) Logout(ctx context.Context) error           { return s.record("logout") }
func (s *stubExec) WhoAmI(ctx context.Context) error           { return s.record("whoami") }
func (s *stubExec) Fetch(ctx context.Context) error            { return s.record("fetch") }
func (s *stubExec) Store(ctx context.Context) error            { return s.record("store") }
func (s *stubExec) ListRecipes(ctx context.Context) error      { return s.record("recipes") }
func (s *stubExec) ShowRecipe(ctx context.Context) error       { return s.record("show") }
func (s *stubExec) AddRecipe(ctx context.Context) error        { return s.record("addrecipe") }
func (s *stubExec) DeleteRecipe(ctx context.Context) error     { return s.record("delrecipe") }
func (s *stubExec) ToShoppingList(ctx context.Context) error   { return s.record("tolist") }
func (s *stubExec) ShowShoppingList(ctx context.Context) error { return s.record("shopping") }
func (s *stubExec) AddItem(ctx context.Context) error          { return s.record("additem") }
func (s *stubExec) EditItem(ctx context.Context) error         { return s.record("edititem") }
func (s *stubExec) DeleteItem(ctx context.Context) error       { return s.record("delitem") }
func (s *stubExec) Backup(ctx context.Context) error           { return s.record("backup") }

func runWithInput(t *testing.T, a *stubExec, input string) string {
	t.Helper()
	var out bytes.Buffer
	runREPL(context.Background(), a, func() string { return "test" },
		bufio.NewReader(strings.NewReader(input)), &out)
	return out.String()
}

func TestREPL_DispatchesLoggedOutCommands(t *testing.T) {
	a := &stubExec{}
	runWithInput(t, a, "login\nsignup\nexit\n")
	assert.Equal(t, []string{"login", "signup"}, a.calls)
}

func TestREPL_GatesLoggedInCommands(t *testing.T) {
	a := &stubExec{loggedIn: false}
	out := runWithInput(t, a, "fetch\nexit\n")

	assert.Empty(t, a.calls)
	assert.Contains(t, out, "Unknown command")
}

func TestREPL_DispatchesLoggedInCommands(t *testing.T) {
	a := &stubExec{loggedIn: true}
	runWithInput(t, a, "fetch\nstore\nrecipes\ntolist\nshopping\nbackup\nlogout\nexit\n")
	assert.Equal(t,
		[]string{"fetch", "store", "recipes", "tolist", "shopping", "backup", "logout"},
		a.calls)
}

func TestREPL_PrintsHandlerErrors(t *testing.T) {
	a := &stubExec{errOn: "login"}
	out := runWithInput(t, a, "login\nexit\n")
	assert.Contains(t, out, "This password is not correct")
}

func TestREPL_HelpFollowsAuthState(t *testing.T) {
	out := runWithInput(t, &stubExec{}, "help\nexit\n")
	assert.Contains(t, out, helpLoggedOut)

	out = runWithInput(t, &stubExec{loggedIn: true}, "help\nexit\n")
	assert.Contains(t, out, helpLoggedIn)
}

func TestREPL_ExitsOnEOF(t *testing.T) {
	a := &stubExec{}
	out := runWithInput(t, a, "")
	require.Contains(t, out, "rk> test > ")
	assert.Empty(t, a.calls)
}

func TestREPL_SkipsBlankLines(t *testing.T) {
	a := &stubExec{}
	runWithInput(t, a, "\n   \nlogin\nquit\n")
	assert.Equal(t, []string{"login"}, a.calls)
}
